package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/koprumezun/mezunhub/internal/app/controllers"
	"github.com/koprumezun/mezunhub/internal/pkg/websocket"
)

// Controllers bundles everything SetupRouter wires up.
type Controllers struct {
	Demo        *controllers.DemoController
	Feed        *controllers.FeedController
	Forum       *controllers.ForumController
	Message     *controllers.MessageController
	Group       *controllers.GroupController
	Mentoring   *controllers.MentoringController
	Career      *controllers.CareerController
	Event       *controllers.EventController
	Fundraising *controllers.FundraisingController
	Engagement  *controllers.EngagementController
	Profile     *controllers.ProfileController
	Settings    *controllers.SettingsController
	WebSocket   *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", c.Demo.HealthCheck)
	v1.POST("/log", c.Demo.ClientLog)

	// Bootstrap and state access
	v1.GET("/bootstrap", c.Demo.Bootstrap)
	v1.GET("/state", c.Demo.GetState)
	v1.PATCH("/state", c.Demo.HydrateState)

	// Demo engine controls
	demo := v1.Group("/demo")
	{
		demo.POST("/reset", c.Demo.Reset)
		demo.POST("/refresh", c.Demo.Refresh)
		demo.GET("/status", c.Demo.Status)
	}

	// Community feed
	feed := v1.Group("/feed")
	{
		feed.GET("", c.Feed.ListPosts)
		feed.POST("", c.Feed.CreatePost)
		feed.POST("/:id/reactions", c.Feed.ReactToPost)
		feed.POST("/:id/comments", c.Feed.AddComment)
	}

	// Forums
	forums := v1.Group("/forums")
	{
		forums.GET("/topics", c.Forum.ListTopics)
		forums.GET("/threads", c.Forum.ListThreads)
		forums.POST("/threads/:id/replies", c.Forum.ReplyToThread)
	}

	// Direct messages
	messages := v1.Group("/messages")
	{
		messages.GET("/threads", c.Message.ListThreads)
		messages.POST("/threads/:id", c.Message.SendMessage)
	}

	// Groups and applications
	groups := v1.Group("/groups")
	{
		groups.GET("", c.Group.ListGroups)
		groups.GET("/applications", c.Group.ListApplications)
		groups.POST("/applications/:id/approve", c.Group.ApproveApplication)
		groups.POST("/:id/join", c.Group.JoinGroup)
		groups.POST("/:id/leave", c.Group.LeaveGroup)
		groups.POST("/:id/applications", c.Group.SubmitApplication)
	}

	// Mentoring
	mentoring := v1.Group("/mentoring")
	{
		mentoring.GET("/mentors", c.Mentoring.ListMentors)
		mentoring.GET("/requests", c.Mentoring.ListRequests)
		mentoring.POST("/requests", c.Mentoring.RequestMentor)
		mentoring.POST("/requests/:id/complete", c.Mentoring.CompleteRequest)
		mentoring.GET("/matches", c.Mentoring.ListMatches)
		mentoring.GET("/flash-sessions", c.Mentoring.ListFlashSessions)
		mentoring.POST("/flash-sessions", c.Mentoring.ScheduleFlashSession)
	}

	// Careers
	careers := v1.Group("/careers")
	{
		careers.GET("/jobs", c.Career.ListJobs)
		careers.POST("/jobs/:id/apply", c.Career.ApplyToJob)
		careers.POST("/jobs/:id/save", c.Career.ToggleSaveJob)
		careers.GET("/applications", c.Career.ListApplications)
		careers.POST("/resume/analyze", c.Career.AnalyzeResume)
	}

	// Events
	events := v1.Group("/events")
	{
		events.GET("", c.Event.ListEvents)
		events.POST("", c.Event.CreateEvent)
		events.POST("/:id/register", c.Event.RegisterEvent)
	}

	// Fundraising
	fundraising := v1.Group("/fundraising")
	{
		fundraising.GET("/campaigns", c.Fundraising.ListCampaigns)
		fundraising.POST("/campaigns", c.Fundraising.CreateCampaign)
		fundraising.POST("/campaigns/:id/donate", c.Fundraising.Donate)
	}

	// Engagement
	engagement := v1.Group("/engagement")
	{
		engagement.GET("", c.Engagement.Overview)
		engagement.POST("/badges", c.Engagement.EarnBadge)
		engagement.POST("/challenges/:id/proof", c.Engagement.SubmitChallengeProof)
		engagement.POST("/perks/:id/claim", c.Engagement.ClaimPerk)
	}

	// Viewer profile
	profile := v1.Group("/profile")
	{
		profile.GET("", c.Profile.GetViewer)
		profile.PATCH("", c.Profile.UpdateViewer)
		profile.DELETE("", c.Profile.DeleteAccount)
		profile.GET("/export", c.Profile.ExportData)
		profile.GET("/cards", c.Profile.ListDigitalCards)
	}

	// Settings
	settingsGroup := v1.Group("/settings")
	{
		settingsGroup.GET("", c.Settings.GetSettings)
		settingsGroup.PATCH("", c.Settings.UpdateSettings)
		settingsGroup.POST("/reset", c.Settings.ResetSettings)
		settingsGroup.GET("/themes", c.Settings.ListThemePresets)
	}

	// Change feed
	router.GET("/ws", c.WebSocket.HandleConnection)
}
