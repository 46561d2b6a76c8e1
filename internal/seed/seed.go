// Package seed provides the canonical demo dataset: the snapshot a fresh
// installation boots with when no remote bootstrap source is configured.
// Identifiers here are stable handles (not UUIDs) so seeded entities can be
// referenced from documentation and tests.
package seed

import (
	"time"

	"github.com/koprumezun/mezunhub/internal/app/models"
	"github.com/koprumezun/mezunhub/internal/demo"
)

// ViewerID is the seeded viewer's profile id.
const ViewerID = "u-demo"

var seedBase = time.Date(2026, time.August, 20, 9, 0, 0, 0, time.UTC)

// Snapshot returns a fresh copy of the demo dataset. Callers own the result.
func Snapshot() demo.Snapshot {
	return demo.Snapshot{
		ViewerID:          ViewerID,
		Users:             users(),
		Posts:             posts(),
		Topics:            topics(),
		Threads:           threads(),
		MessageThreads:    messageThreads(),
		Groups:            groups(),
		GroupApplications: []models.GroupApplication{},
		Mentorships:       mentorships(),
		MentorRequests:    []models.MentorRequest{},
		FlashSessions:     flashSessions(),
		Jobs:              jobs(),
		JobApplications:   []models.JobApplication{},
		ResumeAnalyses:    []models.ResumeAnalysis{},
		Events:            events(),
		Campaigns:         campaigns(),
		Analytics:         analytics(),
		AdminTasks:        adminTasks(),
		Badges:            badges(),
		Integrations:      integrations(),
		Leaderboard:       leaderboard(),
		Challenges:        challenges(),
		Volunteer:         volunteer(),
		Perks:             perks(),
		PremiumInsights:   premiumInsights(),
		PodcastEpisodes:   podcastEpisodes(),
		DigitalCards:      digitalCards(),
	}
}

func users() []models.UserProfile {
	return []models.UserProfile{
		{
			ID:           ViewerID,
			Name:         "Deniz Yılmaz",
			Role:         models.RoleAlumni,
			Title:        "Product Engineer",
			Organization: "Getir",
			Bio:          "Class of 2019, building consumer products in Istanbul. Always happy to talk shop over çay.",
			ClassYear:    "2019",
			Location:     "Istanbul, Türkiye",
			Industry:     "Technology",
			Skills:       []string{"Go", "TypeScript", "Product Discovery"},
			Interests:    []string{"mentoring", "hiking", "photography"},
			Languages:    []models.LanguageCode{models.LanguageTurkish, models.LanguageEnglish},
			Badges:       []string{"b-early-adopter"},
			Headline:     "Shipping things that matter",
		},
		{
			ID:                       "u-elif",
			Name:                     "Elif Aksoy",
			Role:                     models.RoleMentor,
			Title:                    "Engineering Manager",
			Organization:             "Trendyol",
			Bio:                      "Leading platform teams since 2021. Mentoring on career transitions into management.",
			ClassYear:                "2014",
			Location:                 "Istanbul, Türkiye",
			Industry:                 "E-commerce",
			Skills:                   []string{"Leadership", "Distributed Systems", "Hiring"},
			Interests:                []string{"mentoring", "sailing"},
			Languages:                []models.LanguageCode{models.LanguageTurkish, models.LanguageEnglish},
			Badges:                   []string{"b-mentor-gold"},
			Headline:                 "Helping engineers grow into leaders",
			MentorStatus:             models.MentorAvailable,
			PreferredMentoringTopics: []string{"engineering management", "career growth"},
		},
		{
			ID:                       "u-baran",
			Name:                     "Baran Koç",
			Role:                     models.RoleMentor,
			Title:                    "Staff Data Scientist",
			Organization:             "Spotify",
			Bio:                      "Ankara-born, Stockholm-based. Ask me about ML systems and relocating abroad.",
			ClassYear:                "2012",
			Location:                 "Stockholm, Sweden",
			Industry:                 "Technology",
			Skills:                   []string{"Machine Learning", "Python", "Experimentation"},
			Interests:                []string{"mentoring", "chess"},
			Languages:                []models.LanguageCode{models.LanguageTurkish, models.LanguageEnglish},
			Badges:                   []string{},
			MentorStatus:             models.MentorLimited,
			PreferredMentoringTopics: []string{"data science", "working abroad"},
		},
		{
			ID:           "u-zeynep",
			Name:         "Zeynep Demir",
			Role:         models.RoleAlumni,
			Title:        "UX Researcher",
			Organization: "Anadolu Sigorta",
			Bio:          "Researching how people make financial decisions. Weekend ceramicist.",
			ClassYear:    "2020",
			Location:     "Izmir, Türkiye",
			Industry:     "Insurance",
			Skills:       []string{"User Research", "Service Design"},
			Interests:    []string{"ceramics", "volunteering"},
			Languages:    []models.LanguageCode{models.LanguageTurkish, models.LanguageEnglish},
			Badges:       []string{},
		},
		{
			ID:           "u-mert",
			Name:         "Mert Öztürk",
			Role:         models.RoleAlumni,
			Title:        "Founder",
			Organization: "Tarla.io",
			Bio:          "Building agritech for Anatolian farmers. Raised a seed round in 2025.",
			ClassYear:    "2016",
			Location:     "Konya, Türkiye",
			Industry:     "Agriculture",
			Skills:       []string{"Fundraising", "IoT", "Sales"},
			Interests:    []string{"startups", "cycling"},
			Languages:    []models.LanguageCode{models.LanguageTurkish, models.LanguageEnglish},
			Badges:       []string{},
		},
		{
			ID:        "u-selin",
			Name:      "Selin Arslan",
			Role:      models.RoleStudent,
			Title:     "Senior, Computer Engineering",
			Bio:       "Final-year student looking for a new-grad backend role.",
			ClassYear: "2027",
			Location:  "Ankara, Türkiye",
			Industry:  "Technology",
			Skills:    []string{"Java", "SQL"},
			Interests: []string{"internships", "hackathons"},
			Languages: []models.LanguageCode{models.LanguageTurkish, models.LanguageEnglish},
			Badges:    []string{},
		},
		{
			ID:           "u-admin",
			Name:         "Aylin Kaya",
			Role:         models.RoleAdmin,
			Title:        "Alumni Relations Director",
			Organization: "KöprüMezun",
			Bio:          "Running the alumni office since 2018.",
			ClassYear:    "2005",
			Location:     "Istanbul, Türkiye",
			Industry:     "Education",
			Skills:       []string{"Community Building", "Event Planning"},
			Interests:    []string{"networking"},
			Languages:    []models.LanguageCode{models.LanguageTurkish, models.LanguageEnglish},
			Badges:       []string{},
		},
	}
}

func posts() []models.FeedPost {
	return []models.FeedPost{
		{
			ID:        "p-1",
			AuthorID:  "u-elif",
			Content:   "We just opened five backend roles on my team at Trendyol. Referrals from this network get a guaranteed first-round interview. DM me!",
			CreatedAt: seedBase.Add(-2 * time.Hour),
			Audience:  []string{"all"},
			Tags:      []string{"hiring", "backend"},
			Comments: []models.Comment{
				{
					ID:        "c-1",
					AuthorID:  "u-selin",
					Content:   "Just sent you a message, thank you for doing this!",
					CreatedAt: seedBase.Add(-90 * time.Minute),
					Reactions: map[models.ReactionType]int{models.ReactionLike: 2},
				},
			},
			Reactions: map[models.ReactionType]int{
				models.ReactionLike:      24,
				models.ReactionCelebrate: 7,
			},
			IsPinned: true,
		},
		{
			ID:        "p-2",
			AuthorID:  "u-mert",
			Content:   "Tarla.io closed its seed round! Grateful to the three alumni angels who backed us. The mentorship from this community made the difference.",
			CreatedAt: seedBase.Add(-26 * time.Hour),
			Audience:  []string{"all"},
			Tags:      []string{"startups", "milestone"},
			Comments:  []models.Comment{},
			Reactions: map[models.ReactionType]int{
				models.ReactionCelebrate: 41,
				models.ReactionLike:      18,
			},
		},
		{
			ID:        "p-3",
			AuthorID:  "u-zeynep",
			Content:   "Wrote up my notes from last week's UX research meetup in Izmir. Link in the forum thread. Happy to run a repeat session online if there is interest.",
			CreatedAt: seedBase.Add(-49 * time.Hour),
			Audience:  []string{"all"},
			Tags:      []string{"ux", "meetup"},
			Comments:  []models.Comment{},
			Reactions: map[models.ReactionType]int{
				models.ReactionInsightful: 12,
				models.ReactionLike:       9,
			},
		},
	}
}

func topics() []models.ForumTopic {
	return []models.ForumTopic{
		{
			ID:           "t-career",
			Title:        "Career & Interviews",
			Description:  "Offers, negotiations, interview prep, and everything in between.",
			Tags:         []string{"career"},
			Pinned:       true,
			LastActivity: seedBase.Add(-3 * time.Hour),
			Replies:      128,
		},
		{
			ID:           "t-abroad",
			Title:        "Working Abroad",
			Description:  "Visas, relocation packages, and life outside Türkiye.",
			Tags:         []string{"relocation"},
			LastActivity: seedBase.Add(-20 * time.Hour),
			Replies:      86,
		},
		{
			ID:           "t-startups",
			Title:        "Founders' Corner",
			Description:  "For alumni building companies: fundraising, hiring, war stories.",
			Tags:         []string{"startups"},
			LastActivity: seedBase.Add(-5 * 24 * time.Hour),
			Replies:      54,
		},
	}
}

func threads() []models.ForumThread {
	return []models.ForumThread{
		{
			ID:        "th-1",
			TopicID:   "t-career",
			AuthorID:  "u-selin",
			Title:     "Negotiating a new-grad offer in 2026",
			Body:      "I have an offer from a fintech in Istanbul. Base feels low compared to what I see posted here. How much room is there to negotiate as a new grad?",
			CreatedAt: seedBase.Add(-8 * time.Hour),
			Replies: []models.Comment{
				{
					ID:        "r-1",
					AuthorID:  "u-elif",
					Content:   "Always counter once. Worst case they hold firm. Ask for a signing bonus if base is capped.",
					CreatedAt: seedBase.Add(-3 * time.Hour),
					Reactions: map[models.ReactionType]int{models.ReactionInsightful: 6},
				},
			},
		},
		{
			ID:        "th-2",
			TopicID:   "t-abroad",
			AuthorID:  "u-baran",
			Title:     "AMA: five years at Spotify Stockholm",
			Body:      "Moved from Ankara in 2021. Ask me anything about the relocation, the visa process, or the work itself.",
			CreatedAt: seedBase.Add(-30 * time.Hour),
			Replies:   []models.Comment{},
		},
	}
}

func messageThreads() []models.MessageThread {
	return []models.MessageThread{
		{
			ID:             "mt-1",
			ParticipantIDs: []string{ViewerID, "u-elif"},
			LastMessageAt:  seedBase.Add(-50 * time.Minute),
			UnreadCount:    1,
			Messages: []models.Message{
				{
					ID:       "m-1",
					SenderID: ViewerID,
					Body:     "Merhaba Elif! Saw your hiring post. Could we chat about the platform team roles?",
					SentAt:   seedBase.Add(-1 * time.Hour),
					Status:   models.MessageSeen,
				},
				{
					ID:       "m-2",
					SenderID: "u-elif",
					Body:     "Of course! Send your CV over and let's set up a call this week.",
					SentAt:   seedBase.Add(-50 * time.Minute),
					Status:   models.MessageDelivered,
				},
			},
		},
		{
			ID:             "mt-2",
			ParticipantIDs: []string{ViewerID, "u-mert"},
			LastMessageAt:  seedBase.Add(-3 * 24 * time.Hour),
			Messages: []models.Message{
				{
					ID:       "m-3",
					SenderID: "u-mert",
					Body:     "Thanks for the intro to the Konya chapter, the meetup was great.",
					SentAt:   seedBase.Add(-3 * 24 * time.Hour),
					Status:   models.MessageSeen,
				},
			},
		},
	}
}

func groups() []models.Group {
	return []models.Group{
		{
			ID:               "g-istanbul",
			Name:             "Istanbul Chapter",
			Description:      "Monthly meetups, office visits, and çay on the Bosphorus.",
			Category:         "Regional",
			MemberCount:      482,
			MembershipStatus: models.MembershipMember,
			Tags:             []string{"istanbul", "meetups"},
		},
		{
			ID:               "g-women-tech",
			Name:             "Women in Tech",
			Description:      "Peer support, role models, and a yearly summit.",
			Category:         "Community",
			MemberCount:      211,
			MembershipStatus: models.MembershipInvited,
			Tags:             []string{"community", "tech"},
		},
		{
			ID:               "g-founders",
			Name:             "Founders Circle",
			Description:      "Vetted group for alumni running their own companies. Application required.",
			Category:         "Professional",
			MemberCount:      64,
			MembershipStatus: models.MembershipInvited,
			Tags:             []string{"startups"},
		},
		{
			ID:               "g-berlin",
			Name:             "Berlin Chapter",
			Description:      "For alumni in and around Berlin. Döner comparisons welcome.",
			Category:         "Regional",
			MemberCount:      97,
			MembershipStatus: models.MembershipInvited,
			Tags:             []string{"berlin", "abroad"},
		},
	}
}

func mentorships() []models.MentorshipMatch {
	return []models.MentorshipMatch{
		{
			ID:       "mm-1",
			MentorID: "u-baran",
			MenteeID: ViewerID,
			Goals:    []string{"transition into ML engineering"},
			Progress: 60,
			Status:   models.MatchInProgress,
			Notes:    []string{"Completed systems design module", "Next: portfolio project review"},
		},
	}
}

func flashSessions() []models.FlashSession {
	return []models.FlashSession{
		{
			ID:              "fs-1",
			MentorID:        "u-elif",
			StartTime:       seedBase.Add(48 * time.Hour),
			DurationMinutes: 10,
			Topic:           "Resume teardown",
			Status:          models.FlashAvailable,
		},
	}
}

func jobs() []models.JobPosting {
	return []models.JobPosting{
		{
			ID:          "j-1",
			Title:       "Senior Backend Engineer",
			Company:     "Trendyol",
			Location:    "Istanbul (hybrid)",
			Type:        "full-time",
			PostedAt:    "2026-08-18",
			Tags:        []string{"go", "kubernetes"},
			Description: "Platform team building order-management services at scale.",
		},
		{
			ID:          "j-2",
			Title:       "Data Scientist",
			Company:     "Spotify",
			Location:    "Stockholm",
			Type:        "full-time",
			PostedAt:    "2026-08-12",
			Tags:        []string{"ml", "python", "relocation"},
			Description: "Personalization squad. Relocation support included.",
			Saved:       true,
		},
		{
			ID:          "j-3",
			Title:       "Founding Engineer",
			Company:     "Tarla.io",
			Location:    "Konya / remote",
			Type:        "full-time",
			PostedAt:    "2026-08-22",
			Tags:        []string{"iot", "startup", "equity"},
			Description: "First ten employees. Meaningful equity, meaningful problems.",
		},
		{
			ID:          "j-4",
			Title:       "Backend Intern",
			Company:     "Getir",
			Location:    "Istanbul",
			Type:        "internship",
			PostedAt:    "2026-08-25",
			Tags:        []string{"internship", "go"},
			Description: "Six-month internship on the logistics platform team.",
		},
	}
}

func events() []models.Event {
	return []models.Event{
		{
			ID:           "e-gala",
			Title:        "Annual Alumni Gala",
			Description:  "Black-tie dinner on the Bosphorus with the class of 2016 reunion.",
			Date:         "2026-10-03",
			Time:         "19:00",
			Location:     "Çırağan Palace, Istanbul",
			Type:         models.EventInPerson,
			Tags:         []string{"gala", "reunion"},
			Capacity:     300,
			Attendees:    264,
			OrganizerID:  "u-admin",
			Currency:     "TRY",
			TicketPrice:  2500,
			TicketStatus: models.TicketAvailable,
		},
		{
			ID:           "e-career-night",
			Title:        "Career Night: Tech Edition",
			Description:  "Speed networking with hiring managers from twelve companies.",
			Date:         "2026-09-10",
			Time:         "18:30",
			Location:     "Online",
			Type:         models.EventVirtual,
			Tags:         []string{"career", "networking"},
			Capacity:     150,
			Attendees:    150,
			OrganizerID:  "u-admin",
			TicketStatus: models.TicketSoldOut,
		},
		{
			ID:          "e-ankara-brunch",
			Title:       "Ankara Chapter Brunch",
			Description: "Casual brunch for the Ankara crowd, newcomers especially welcome.",
			Date:        "2026-09-20",
			Time:        "11:00",
			Location:    "Kızılay, Ankara",
			Type:        models.EventInPerson,
			Tags:        []string{"ankara", "social"},
			Capacity:    40,
			Attendees:   17,
			OrganizerID: "u-selin",
		},
	}
}

func campaigns() []models.FundraisingCampaign {
	return []models.FundraisingCampaign{
		{
			ID:          "f-scholarship",
			Name:        "First-Generation Scholarship Fund",
			Description: "Full scholarships for ten first-generation students each year.",
			Goal:        1000000,
			Raised:      640000,
			Donors:      312,
			Progress:    64,
			ImpactHighlights: []string{
				"10 scholars funded in 2025",
				"94% graduation rate among scholars",
			},
		},
		{
			ID:          "f-lab",
			Name:        "Robotics Lab Renovation",
			Description: "Modernizing the undergraduate robotics lab with new equipment.",
			Goal:        500000,
			Raised:      115000,
			Donors:      78,
			Progress:    23,
			ImpactHighlights: []string{
				"Equipment list finalized with faculty",
			},
		},
	}
}

func analytics() []models.AnalyticsMetric {
	return []models.AnalyticsMetric{
		{ID: "a-members", Label: "Active members", Value: 4812, Delta: 3.2, Unit: "members", Trend: []float64{4520, 4590, 4655, 4710, 4812}},
		{ID: "a-events", Label: "Events this quarter", Value: 14, Delta: 2},
		{ID: "a-donations", Label: "Donations YTD", Value: 755000, Delta: 12.5, Unit: "TRY"},
		{ID: "a-matches", Label: "Mentorship matches", Value: 186, Delta: 8.1},
	}
}

func adminTasks() []models.AdminTask {
	return []models.AdminTask{
		{
			ID:          "at-1",
			Title:       "Review reported forum post",
			Description: "Two reports on a thread in Founders' Corner.",
			Status:      models.TaskOpen,
			CreatedAt:   seedBase.Add(-6 * time.Hour),
		},
		{
			ID:          "at-2",
			Title:       "Approve Berlin chapter budget",
			Description: "Q4 meetup budget request awaiting sign-off.",
			Status:      models.TaskInReview,
			AssigneeID:  "u-admin",
			CreatedAt:   seedBase.Add(-2 * 24 * time.Hour),
		},
	}
}

func badges() []models.Badge {
	return []models.Badge{
		{
			ID:          "b-early-adopter",
			Name:        "Early Adopter",
			Description: "Joined the network in its first season.",
			EarnedAt:    seedBase.Add(-90 * 24 * time.Hour),
			Tier:        models.TierSilver,
		},
	}
}

func integrations() []models.IntegrationStub {
	return []models.IntegrationStub{
		{ID: "i-calendar", Name: "Google Calendar", Description: "Sync event RSVPs to your calendar.", Status: models.IntegrationConnected},
		{ID: "i-linkedin", Name: "LinkedIn", Description: "Import your work history.", Status: models.IntegrationAvailable},
		{ID: "i-slack", Name: "Slack", Description: "Chapter channels in your workspace.", Status: models.IntegrationComingSoon},
	}
}

func leaderboard() []models.LeaderboardEntry {
	return []models.LeaderboardEntry{
		{ID: "l-1", UserID: "u-elif", Score: 980, Segment: "mentors", BadgeIDs: []string{"b-mentor-gold"}},
		{ID: "l-2", UserID: "u-zeynep", Score: 760, Segment: "community"},
		{ID: "l-3", UserID: ViewerID, Score: 540, Segment: "community", BadgeIDs: []string{"b-early-adopter"}},
	}
}

func challenges() []models.Challenge {
	return []models.Challenge{
		{
			ID:           "ch-giveback",
			Title:        "September Give-Back Sprint",
			Theme:        "Volunteer hours",
			Month:        "2026-09",
			Participants: 142,
			Submissions:  67,
			Leaderboard: []models.LeaderboardEntry{
				{ID: "chl-1", UserID: ViewerID, Score: 120, Segment: "challenge"},
				{ID: "chl-2", UserID: "u-zeynep", Score: 95, Segment: "challenge"},
			},
			Prize: "Dinner with the rector",
		},
	}
}

func volunteer() []models.VolunteerOpportunity {
	return []models.VolunteerOpportunity{
		{
			ID:           "v-mocks",
			Title:        "Mock Interview Marathon",
			Organization: "Career Center",
			Impact:       "Prepare 60 seniors for fall recruiting",
			Hours:        3,
			Needed:       20,
			Participants: 14,
			Category:     "career",
		},
		{
			ID:           "v-earthquake",
			Title:        "Disaster Preparedness Workshop",
			Organization: "AKUT partnership",
			Impact:       "Train 200 students in basic response skills",
			Hours:        5,
			Needed:       10,
			Participants: 4,
			Category:     "community",
		},
	}
}

func perks() []models.Perk {
	return []models.Perk{
		{ID: "pk-coffee", Partner: "Kronotrop", Description: "20% off at all Istanbul locations.", DiscountCode: "MEZUN20", Category: "food"},
		{ID: "pk-coworking", Partner: "Kolektif House", Description: "Free day pass each month.", DiscountCode: "KOPRU-DAY", Category: "workspace"},
		{ID: "pk-books", Partner: "D&R", Description: "15% off technical books.", DiscountCode: "MEZUNKITAP", Category: "retail"},
	}
}

func premiumInsights() []models.PremiumInsight {
	return []models.PremiumInsight{
		{ID: "pi-salary", Title: "Salary Benchmarks 2026", Description: "Compensation data from 800 alumni across six industries.", Metric: "₺ benchmarks"},
		{ID: "pi-paths", Title: "Career Path Explorer", Description: "Where graduates of your program are five years out."},
	}
}

func podcastEpisodes() []models.PodcastEpisode {
	return []models.PodcastEpisode{
		{
			ID:          "pe-1",
			Title:       "From Konya to a Seed Round",
			Description: "Mert Öztürk on building agritech outside the big cities.",
			Duration:    "42:10",
			Guest:       "Mert Öztürk",
			ReleaseDate: "2026-08-15",
			Type:        "podcast",
		},
		{
			ID:          "pe-2",
			Title:       "Five Years in Stockholm",
			Description: "Baran Koç on relocating and staying connected to home.",
			Duration:    "35:48",
			Guest:       "Baran Koç",
			ReleaseDate: "2026-07-30",
			Type:        "podcast",
		},
	}
}

func digitalCards() []models.DigitalCard {
	return []models.DigitalCard{
		{
			ID:        "dc-1",
			UserID:    ViewerID,
			QRCode:    "koprumezun://card/u-demo",
			ExpiresAt: seedBase.Add(365 * 24 * time.Hour),
		},
	}
}
