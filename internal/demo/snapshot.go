package demo

import (
	"time"

	"github.com/koprumezun/mezunhub/internal/app/models"
)

// Snapshot is the full shape of the demo dataset. It doubles as a partial
// merge payload: a nil collection (or empty viewer id) means "not present",
// so decoding a partial JSON document and passing it to Hydrate leaves the
// omitted fields untouched. The store keeps every collection non-nil.
type Snapshot struct {
	ViewerID          string                        `json:"viewerId"`
	Users             []models.UserProfile          `json:"users"`
	Posts             []models.FeedPost             `json:"posts"`
	Topics            []models.ForumTopic           `json:"topics"`
	Threads           []models.ForumThread          `json:"threads"`
	MessageThreads    []models.MessageThread        `json:"messageThreads"`
	Groups            []models.Group                `json:"groups"`
	GroupApplications []models.GroupApplication     `json:"groupApplications"`
	Mentorships       []models.MentorshipMatch      `json:"mentorships"`
	MentorRequests    []models.MentorRequest        `json:"mentorRequests"`
	FlashSessions     []models.FlashSession         `json:"flashSessions"`
	Jobs              []models.JobPosting           `json:"jobs"`
	JobApplications   []models.JobApplication       `json:"jobApplications"`
	ResumeAnalyses    []models.ResumeAnalysis       `json:"resumeAnalyses"`
	Events            []models.Event                `json:"events"`
	Campaigns         []models.FundraisingCampaign  `json:"campaigns"`
	Analytics         []models.AnalyticsMetric      `json:"analytics"`
	AdminTasks        []models.AdminTask            `json:"adminTasks"`
	Badges            []models.Badge                `json:"badges"`
	Integrations      []models.IntegrationStub      `json:"integrations"`
	Leaderboard       []models.LeaderboardEntry     `json:"leaderboard"`
	Challenges        []models.Challenge            `json:"challenges"`
	Volunteer         []models.VolunteerOpportunity `json:"volunteer"`
	Perks             []models.Perk                 `json:"perks"`
	PremiumInsights   []models.PremiumInsight       `json:"premiumInsights"`
	PodcastEpisodes   []models.PodcastEpisode       `json:"podcastEpisodes"`
	DigitalCards      []models.DigitalCard          `json:"digitalCards"`
}

func defaultSnapshot() Snapshot {
	return Snapshot{
		Users:             []models.UserProfile{},
		Posts:             []models.FeedPost{},
		Topics:            []models.ForumTopic{},
		Threads:           []models.ForumThread{},
		MessageThreads:    []models.MessageThread{},
		Groups:            []models.Group{},
		GroupApplications: []models.GroupApplication{},
		Mentorships:       []models.MentorshipMatch{},
		MentorRequests:    []models.MentorRequest{},
		FlashSessions:     []models.FlashSession{},
		Jobs:              []models.JobPosting{},
		JobApplications:   []models.JobApplication{},
		ResumeAnalyses:    []models.ResumeAnalysis{},
		Events:            []models.Event{},
		Campaigns:         []models.FundraisingCampaign{},
		Analytics:         []models.AnalyticsMetric{},
		AdminTasks:        []models.AdminTask{},
		Badges:            []models.Badge{},
		Integrations:      []models.IntegrationStub{},
		Leaderboard:       []models.LeaderboardEntry{},
		Challenges:        []models.Challenge{},
		Volunteer:         []models.VolunteerOpportunity{},
		Perks:             []models.Perk{},
		PremiumInsights:   []models.PremiumInsight{},
		PodcastEpisodes:   []models.PodcastEpisode{},
		DigitalCards:      []models.DigitalCard{},
	}
}

func orCurrent[T any](override, current []T) []T {
	if override != nil {
		return override
	}
	return current
}

// merged returns base with every present field of partial applied on top.
func merged(base, partial Snapshot) Snapshot {
	out := base
	if partial.ViewerID != "" {
		out.ViewerID = partial.ViewerID
	}
	out.Users = orCurrent(partial.Users, base.Users)
	out.Posts = orCurrent(partial.Posts, base.Posts)
	out.Topics = orCurrent(partial.Topics, base.Topics)
	out.Threads = orCurrent(partial.Threads, base.Threads)
	out.MessageThreads = orCurrent(partial.MessageThreads, base.MessageThreads)
	out.Groups = orCurrent(partial.Groups, base.Groups)
	out.GroupApplications = orCurrent(partial.GroupApplications, base.GroupApplications)
	out.Mentorships = orCurrent(partial.Mentorships, base.Mentorships)
	out.MentorRequests = orCurrent(partial.MentorRequests, base.MentorRequests)
	out.FlashSessions = orCurrent(partial.FlashSessions, base.FlashSessions)
	out.Jobs = orCurrent(partial.Jobs, base.Jobs)
	out.JobApplications = orCurrent(partial.JobApplications, base.JobApplications)
	out.ResumeAnalyses = orCurrent(partial.ResumeAnalyses, base.ResumeAnalyses)
	out.Events = orCurrent(partial.Events, base.Events)
	out.Campaigns = orCurrent(partial.Campaigns, base.Campaigns)
	out.Analytics = orCurrent(partial.Analytics, base.Analytics)
	out.AdminTasks = orCurrent(partial.AdminTasks, base.AdminTasks)
	out.Badges = orCurrent(partial.Badges, base.Badges)
	out.Integrations = orCurrent(partial.Integrations, base.Integrations)
	out.Leaderboard = orCurrent(partial.Leaderboard, base.Leaderboard)
	out.Challenges = orCurrent(partial.Challenges, base.Challenges)
	out.Volunteer = orCurrent(partial.Volunteer, base.Volunteer)
	out.Perks = orCurrent(partial.Perks, base.Perks)
	out.PremiumInsights = orCurrent(partial.PremiumInsights, base.PremiumInsights)
	out.PodcastEpisodes = orCurrent(partial.PodcastEpisodes, base.PodcastEpisodes)
	out.DigitalCards = orCurrent(partial.DigitalCards, base.DigitalCards)
	return out
}

// PersistedState is the named subset of the store written to durable storage
// after every change. High-churn and presentational collections (user
// directory, analytics, message threads) are deliberately excluded and are
// re-supplied by the bootstrap fetch on a fresh load.
type PersistedState struct {
	ViewerID        string                       `json:"viewerId"`
	Posts           []models.FeedPost            `json:"posts"`
	Groups          []models.Group               `json:"groups"`
	Mentorships     []models.MentorshipMatch     `json:"mentorships"`
	MentorRequests  []models.MentorRequest       `json:"mentorRequests"`
	JobApplications []models.JobApplication      `json:"jobApplications"`
	ResumeAnalyses  []models.ResumeAnalysis      `json:"resumeAnalyses"`
	Events          []models.Event               `json:"events"`
	Campaigns       []models.FundraisingCampaign `json:"campaigns"`
	Badges          []models.Badge               `json:"badges"`
	Leaderboard     []models.LeaderboardEntry    `json:"leaderboard"`
	Challenges      []models.Challenge           `json:"challenges"`
	Perks           []models.Perk                `json:"perks"`
}

func persistedFrom(s Snapshot) PersistedState {
	return PersistedState{
		ViewerID:        s.ViewerID,
		Posts:           s.Posts,
		Groups:          s.Groups,
		Mentorships:     s.Mentorships,
		MentorRequests:  s.MentorRequests,
		JobApplications: s.JobApplications,
		ResumeAnalyses:  s.ResumeAnalyses,
		Events:          s.Events,
		Campaigns:       s.Campaigns,
		Badges:          s.Badges,
		Leaderboard:     s.Leaderboard,
		Challenges:      s.Challenges,
		Perks:           s.Perks,
	}
}

// Partial converts the persisted subset back into a merge payload.
func (p PersistedState) Partial() Snapshot {
	return Snapshot{
		ViewerID:        p.ViewerID,
		Posts:           p.Posts,
		Groups:          p.Groups,
		Mentorships:     p.Mentorships,
		MentorRequests:  p.MentorRequests,
		JobApplications: p.JobApplications,
		ResumeAnalyses:  p.ResumeAnalyses,
		Events:          p.Events,
		Campaigns:       p.Campaigns,
		Badges:          p.Badges,
		Leaderboard:     p.Leaderboard,
		Challenges:      p.Challenges,
		Perks:           p.Perks,
	}
}

// ChangeEvent describes a completed store mutation. Subscribers receive one
// per action; the websocket hub and the NATS publisher fan these out.
type ChangeEvent struct {
	Action   string    `json:"action"`
	EntityID string    `json:"entityId,omitempty"`
	At       time.Time `json:"at"`
}
