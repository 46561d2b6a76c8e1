package demo

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koprumezun/mezunhub/internal/app/models"
)

var testStart = time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)

type recordingSink struct {
	mu    sync.Mutex
	saves []PersistedState
}

func (s *recordingSink) Save(state PersistedState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, state)
	return nil
}

func (s *recordingSink) last() (PersistedState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saves) == 0 {
		return PersistedState{}, false
	}
	return s.saves[len(s.saves)-1], true
}

type storeFixture struct {
	store *Store
	clock *VirtualClock
	sink  *recordingSink
	rand  *float64
}

func newFixture(t *testing.T) *storeFixture {
	t.Helper()

	clock := NewVirtualClock(testStart)
	sink := &recordingSink{}
	randValue := 0.5

	seq := 0
	fx := &storeFixture{clock: clock, sink: sink, rand: &randValue}
	fx.store = NewStore(Config{
		Clock:     clock,
		Scheduler: clock,
		Rand:      func() float64 { return *fx.rand },
		NewID: func() string {
			seq++
			return string(rune('a'+seq-1)) + "-id"
		},
		Sink: sink,
	})
	return fx
}

func (fx *storeFixture) hydrateGroups(groups ...models.Group) {
	fx.store.Hydrate(Snapshot{Groups: groups})
}

func testGroup(id string) models.Group {
	return models.Group{
		ID:               id,
		Name:             "Test Group",
		MemberCount:      10,
		MembershipStatus: models.MembershipInvited,
	}
}

func TestCreatePostDefaults(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{ViewerID: "viewer-1"})

	post := fx.store.CreatePost("hello network", []string{"intro"}, nil)

	assert.Equal(t, "viewer-1", post.AuthorID)
	assert.Equal(t, []string{"all"}, post.Audience)
	assert.Equal(t, map[models.ReactionType]int{models.ReactionLike: 1}, post.Reactions)
	assert.Empty(t, post.Comments)
	assert.Equal(t, testStart, post.CreatedAt)

	second := fx.store.CreatePost("second", nil, nil)
	posts := fx.store.Snapshot().Posts
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID, "newest post should be first")
}

func TestReactToPost(t *testing.T) {
	fx := newFixture(t)
	post := fx.store.CreatePost("content", nil, nil)

	updated, ok := fx.store.ReactToPost(post.ID, models.ReactionCelebrate)
	require.True(t, ok)
	assert.Equal(t, 1, updated.Reactions[models.ReactionCelebrate])
	assert.Equal(t, 1, updated.Reactions[models.ReactionLike])

	_, ok = fx.store.ReactToPost("missing", models.ReactionLike)
	assert.False(t, ok)
}

func TestAddCommentPrepends(t *testing.T) {
	fx := newFixture(t)
	post := fx.store.CreatePost("content", nil, nil)

	first, ok := fx.store.AddComment(post.ID, "u-1", "first")
	require.True(t, ok)
	second, ok := fx.store.AddComment(post.ID, "u-2", "second")
	require.True(t, ok)

	comments := fx.store.Snapshot().Posts[0].Comments
	require.Len(t, comments, 2)
	assert.Equal(t, second.ID, comments[0].ID)
	assert.Equal(t, first.ID, comments[1].ID)
	assert.NotNil(t, comments[0].Reactions)
}

func TestJoinGroupIdempotent(t *testing.T) {
	fx := newFixture(t)
	fx.hydrateGroups(testGroup("g-1"))

	joined, ok := fx.store.JoinGroup("g-1")
	require.True(t, ok)
	assert.Equal(t, models.MembershipMember, joined.MembershipStatus)
	assert.Equal(t, 11, joined.MemberCount)

	again, ok := fx.store.JoinGroup("g-1")
	require.True(t, ok)
	assert.Equal(t, 11, again.MemberCount, "joining twice must not double count")

	_, ok = fx.store.JoinGroup("missing")
	assert.False(t, ok)
}

func TestLeaveGroup(t *testing.T) {
	fx := newFixture(t)
	fx.hydrateGroups(testGroup("g-1"))
	fx.store.JoinGroup("g-1")

	left, ok := fx.store.LeaveGroup("g-1")
	require.True(t, ok)
	assert.Equal(t, models.MembershipInvited, left.MembershipStatus)
	assert.Equal(t, 10, left.MemberCount)

	// Leaving when not a member must not decrement.
	left, ok = fx.store.LeaveGroup("g-1")
	require.True(t, ok)
	assert.Equal(t, 10, left.MemberCount)
}

func TestLeaveGroupClearsPendingApplication(t *testing.T) {
	fx := newFixture(t)
	fx.hydrateGroups(testGroup("g-1"))

	_, ok := fx.store.SubmitGroupApplication(GroupApplicationInput{GroupID: "g-1", Name: "Deniz", Email: "d@example.com"})
	require.True(t, ok)
	require.Len(t, fx.store.Snapshot().GroupApplications, 1)

	fx.store.LeaveGroup("g-1")
	assert.Empty(t, fx.store.Snapshot().GroupApplications)

	// The orphaned approval timer must be a no-op.
	fx.clock.Advance(3 * time.Second)
	assert.Empty(t, fx.store.Snapshot().GroupApplications)
}

func TestGroupApplicationAutoApproval(t *testing.T) {
	fx := newFixture(t)
	fx.hydrateGroups(testGroup("g-1"))

	application, ok := fx.store.SubmitGroupApplication(GroupApplicationInput{GroupID: "g-1", Name: "Deniz", Email: "d@example.com"})
	require.True(t, ok)
	assert.Equal(t, models.ApplicationPending, application.Status)

	snapshot := fx.store.Snapshot()
	assert.Equal(t, models.MembershipPending, snapshot.Groups[0].MembershipStatus)

	// Just before the delay nothing should change.
	fx.clock.Advance(1999 * time.Millisecond)
	assert.Equal(t, models.ApplicationPending, fx.store.Snapshot().GroupApplications[0].Status)

	fx.clock.Advance(time.Millisecond)
	snapshot = fx.store.Snapshot()
	assert.Equal(t, models.ApplicationApproved, snapshot.GroupApplications[0].Status)
	assert.Equal(t, models.MembershipMember, snapshot.Groups[0].MembershipStatus)
	assert.Equal(t, 11, snapshot.Groups[0].MemberCount)
}

func TestGroupApplicationSupersedesPrior(t *testing.T) {
	fx := newFixture(t)
	fx.hydrateGroups(testGroup("g-1"))

	first, _ := fx.store.SubmitGroupApplication(GroupApplicationInput{GroupID: "g-1", Name: "A", Email: "a@example.com"})
	second, _ := fx.store.SubmitGroupApplication(GroupApplicationInput{GroupID: "g-1", Name: "B", Email: "b@example.com"})

	applications := fx.store.Snapshot().GroupApplications
	require.Len(t, applications, 1, "second submission supersedes the first")
	assert.Equal(t, second.ID, applications[0].ID)

	// The first application's timer fires against a removed id.
	fx.clock.Advance(2 * time.Second)
	snapshot := fx.store.Snapshot()
	assert.Equal(t, models.ApplicationApproved, snapshot.GroupApplications[0].Status)
	assert.Equal(t, 11, snapshot.Groups[0].MemberCount, "only one approval may count")

	_, ok := fx.store.ApproveGroupApplication(first.ID)
	assert.False(t, ok)
}

func TestApproveApplicationIdempotent(t *testing.T) {
	fx := newFixture(t)
	fx.hydrateGroups(testGroup("g-1"))

	application, _ := fx.store.SubmitGroupApplication(GroupApplicationInput{GroupID: "g-1", Name: "A", Email: "a@example.com"})

	approved, ok := fx.store.ApproveGroupApplication(application.ID)
	require.True(t, ok)
	assert.Equal(t, models.ApplicationApproved, approved.Status)
	assert.Equal(t, 11, fx.store.Snapshot().Groups[0].MemberCount)

	// Manual approval already resolved it; the timer must not re-count.
	fx.clock.Advance(2 * time.Second)
	assert.Equal(t, 11, fx.store.Snapshot().Groups[0].MemberCount)
}

func TestSubmitApplicationRequiresGroup(t *testing.T) {
	fx := newFixture(t)
	_, ok := fx.store.SubmitGroupApplication(GroupApplicationInput{GroupID: "missing", Name: "A", Email: "a@example.com"})
	assert.False(t, ok)
	assert.Empty(t, fx.store.Snapshot().GroupApplications)
}

func TestMentorRequestAccepted(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{ViewerID: "viewer-1"})
	*fx.rand = 0.5 // below the 0.8 default, accepted

	request := fx.store.RequestMentor("mentor-1", []string{"career growth"})
	assert.Equal(t, models.MentorRequestPending, request.Status)

	fx.clock.Advance(1500 * time.Millisecond)

	snapshot := fx.store.Snapshot()
	assert.Equal(t, models.MentorRequestAccepted, snapshot.MentorRequests[0].Status)
	require.Len(t, snapshot.Mentorships, 1)
	match := snapshot.Mentorships[0]
	assert.Equal(t, "mentor-1", match.MentorID)
	assert.Equal(t, "viewer-1", match.MenteeID)
	assert.Equal(t, matchInitialProgress, match.Progress)
	assert.Equal(t, models.MatchInProgress, match.Status)
	assert.Equal(t, []string{"career growth"}, match.Goals)
}

func TestMentorRequestScheduled(t *testing.T) {
	fx := newFixture(t)
	*fx.rand = 0.95 // above the threshold, scheduled

	fx.store.RequestMentor("mentor-1", nil)
	fx.clock.Advance(1500 * time.Millisecond)

	snapshot := fx.store.Snapshot()
	assert.Equal(t, models.MentorRequestScheduled, snapshot.MentorRequests[0].Status)
	assert.Empty(t, snapshot.Mentorships, "scheduled requests create no match")
}

func TestCompleteMentorRequestIdempotent(t *testing.T) {
	fx := newFixture(t)
	*fx.rand = 0.5

	request := fx.store.RequestMentor("mentor-1", nil)

	_, ok := fx.store.CompleteMentorRequest(request.ID)
	require.True(t, ok)
	require.Len(t, fx.store.Snapshot().Mentorships, 1)

	// Timer fires after manual completion; no duplicate match.
	fx.clock.Advance(2 * time.Second)
	assert.Len(t, fx.store.Snapshot().Mentorships, 1)

	_, ok = fx.store.CompleteMentorRequest("missing")
	assert.False(t, ok)
}

func TestMentorAcceptanceRatio(t *testing.T) {
	clock := NewVirtualClock(testStart)
	next := 0.0
	store := NewStore(Config{
		Clock:     clock,
		Scheduler: clock,
		Rand: func() float64 {
			// Cycle deterministically through [0,1).
			next += 0.001
			if next >= 1 {
				next -= 1
			}
			return next
		},
	})

	for i := 0; i < 1000; i++ {
		store.RequestMentor("mentor-1", nil)
	}
	clock.Advance(2 * time.Second)

	accepted := 0
	for _, request := range store.Snapshot().MentorRequests {
		require.NotEqual(t, models.MentorRequestPending, request.Status)
		if request.Status == models.MentorRequestAccepted {
			accepted++
		}
	}
	assert.InDelta(t, 800, accepted, 10, "acceptance should track the configured probability")
}

func TestScheduleFlashSession(t *testing.T) {
	fx := newFixture(t)
	session := fx.store.ScheduleFlashSession("mentor-1", "Resume teardown")

	assert.Equal(t, testStart.Add(time.Hour), session.StartTime)
	assert.Equal(t, flashSessionMinutes, session.DurationMinutes)
	assert.Equal(t, models.FlashUpcoming, session.Status)
}

func TestApplyToJobIdempotent(t *testing.T) {
	fx := newFixture(t)

	first := fx.store.ApplyToJob("job-1")
	assert.Equal(t, models.StageApplied, first.Status)

	second := fx.store.ApplyToJob("job-1")
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, fx.store.Snapshot().JobApplications, 1)

	fx.store.ApplyToJob("job-2")
	assert.Len(t, fx.store.Snapshot().JobApplications, 2)
}

func TestToggleSaveJob(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{Jobs: []models.JobPosting{{ID: "job-1"}}})

	job, ok := fx.store.ToggleSaveJob("job-1")
	require.True(t, ok)
	assert.True(t, job.Saved)

	job, _ = fx.store.ToggleSaveJob("job-1")
	assert.False(t, job.Saved)

	_, ok = fx.store.ToggleSaveJob("missing")
	assert.False(t, ok)
}

func TestAnalyzeResume(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{Users: []models.UserProfile{
		{ID: "a-1", Role: models.RoleAlumni},
		{ID: "s-1", Role: models.RoleStudent},
		{ID: "a-2", Role: models.RoleAlumni},
		{ID: "a-3", Role: models.RoleAlumni},
		{ID: "a-4", Role: models.RoleAlumni},
	}})

	*fx.rand = 0.0
	analysis := fx.store.AnalyzeResume([]string{"Go"}, []string{"Add metrics"})
	assert.Equal(t, 70, analysis.Score)
	assert.Equal(t, []string{"a-1", "a-2", "a-3"}, analysis.RecommendedAlumni, "students excluded, capped at three")

	*fx.rand = 0.999
	analysis = fx.store.AnalyzeResume(nil, nil)
	assert.Less(t, analysis.Score, 95)
	assert.GreaterOrEqual(t, analysis.Score, 70)
}

func TestRegisterEvent(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{Events: []models.Event{
		{ID: "e-1", Capacity: 100, Attendees: 10},
		{ID: "e-sold", Capacity: 50, Attendees: 50, TicketStatus: models.TicketSoldOut},
		{ID: "e-paid", Capacity: 20, Attendees: 5, TicketPrice: 100, TicketStatus: models.TicketAvailable},
	}})

	event, ok := fx.store.RegisterEvent("e-1")
	require.True(t, ok)
	assert.True(t, event.Registered)
	assert.Equal(t, 11, event.Attendees)

	// Registering twice is idempotent.
	event, ok = fx.store.RegisterEvent("e-1")
	require.True(t, ok)
	assert.Equal(t, 11, event.Attendees)

	// Sold out leaves everything unchanged.
	event, ok = fx.store.RegisterEvent("e-sold")
	require.True(t, ok)
	assert.False(t, event.Registered)
	assert.Equal(t, 50, event.Attendees)

	// Paid tickets flip to purchased.
	event, ok = fx.store.RegisterEvent("e-paid")
	require.True(t, ok)
	assert.Equal(t, models.TicketPurchased, event.TicketStatus)

	_, ok = fx.store.RegisterEvent("missing")
	assert.False(t, ok)
}

func TestCreateEventDefaults(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{ViewerID: "viewer-1"})

	event := fx.store.CreateEvent(EventInput{Title: "Meetup"})
	assert.Equal(t, defaultEventCapacity, event.Capacity)
	assert.Equal(t, 1, event.Attendees, "organizer counts as the first attendee")
	assert.Equal(t, "viewer-1", event.OrganizerID)
	assert.Equal(t, models.EventInPerson, event.Type)
	assert.Empty(t, event.TicketStatus)

	paid := fx.store.CreateEvent(EventInput{Title: "Gala", TicketPrice: 500})
	assert.Equal(t, models.TicketAvailable, paid.TicketStatus)
	assert.Equal(t, "TRY", paid.Currency)
}

func TestEventCapacityNeverExceeded(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{ViewerID: "viewer-1"})

	event := fx.store.CreateEvent(EventInput{Title: "Tiny", Capacity: 2})

	for i := 0; i < 3; i++ {
		_, ok := fx.store.RegisterEvent(event.ID)
		require.True(t, ok)
	}

	final := fx.store.Snapshot().Events[0]
	assert.Equal(t, 2, final.Attendees)
	assert.True(t, final.Registered)
}

func TestDonateToCampaign(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{Campaigns: []models.FundraisingCampaign{
		{ID: "c-1", Goal: 1000, Raised: 100, Donors: 2, Progress: 10},
	}})

	campaign, ok := fx.store.DonateToCampaign("c-1", 400)
	require.True(t, ok)
	assert.Equal(t, 500.0, campaign.Raised)
	assert.Equal(t, 3, campaign.Donors)
	assert.Equal(t, 50, campaign.Progress)

	// Overshooting the goal clamps progress at 100.
	campaign, _ = fx.store.DonateToCampaign("c-1", 10000)
	assert.Equal(t, 100, campaign.Progress)

	// Non-positive amounts leave the campaign untouched.
	campaign, ok = fx.store.DonateToCampaign("c-1", -50)
	require.True(t, ok)
	assert.Equal(t, 10500.0, campaign.Raised)
	assert.Equal(t, 4, campaign.Donors)

	_, ok = fx.store.DonateToCampaign("missing", 10)
	assert.False(t, ok)
}

func TestCreateCampaign(t *testing.T) {
	fx := newFixture(t)
	campaign := fx.store.CreateCampaign(CampaignInput{Name: "New Lab", Goal: 5000})

	assert.Equal(t, 0.0, campaign.Raised)
	assert.Equal(t, 0, campaign.Donors)
	assert.Equal(t, 0, campaign.Progress)
	assert.NotNil(t, campaign.ImpactHighlights)
}

func TestSubmitChallengeProof(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{Challenges: []models.Challenge{{
		ID:          "ch-1",
		Submissions: 5,
		Leaderboard: []models.LeaderboardEntry{
			{ID: "l-1", UserID: "u-1", Score: 100},
			{ID: "l-2", UserID: "u-2", Score: 90},
		},
	}}})

	challenge, ok := fx.store.SubmitChallengeProof("ch-1", 25)
	require.True(t, ok)
	assert.Equal(t, 6, challenge.Submissions)
	assert.Equal(t, 125, challenge.Leaderboard[0].Score)
	assert.Equal(t, 90, challenge.Leaderboard[1].Score)

	_, ok = fx.store.SubmitChallengeProof("missing", 10)
	assert.False(t, ok)
}

func TestClaimPerkIdempotent(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{Perks: []models.Perk{{ID: "p-1"}}})

	perk, ok := fx.store.ClaimPerk("p-1")
	require.True(t, ok)
	assert.True(t, perk.Claimed)

	perk, ok = fx.store.ClaimPerk("p-1")
	require.True(t, ok)
	assert.True(t, perk.Claimed)

	_, ok = fx.store.ClaimPerk("missing")
	assert.False(t, ok)
}

func TestReplyToThread(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{Threads: []models.ForumThread{{ID: "th-1"}}})

	first, ok := fx.store.ReplyToThread("th-1", "u-1", "first reply")
	require.True(t, ok)
	second, ok := fx.store.ReplyToThread("th-1", "u-2", "second reply")
	require.True(t, ok)

	replies := fx.store.Snapshot().Threads[0].Replies
	require.Len(t, replies, 2)
	assert.Equal(t, second.ID, replies[0].ID)
	assert.Equal(t, first.ID, replies[1].ID)

	_, ok = fx.store.ReplyToThread("missing", "u-1", "x")
	assert.False(t, ok)
}

func TestSendMessageStatusProgression(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{
		ViewerID:       "viewer-1",
		MessageThreads: []models.MessageThread{{ID: "mt-1"}},
	})

	message, ok := fx.store.SendMessage("mt-1", "merhaba")
	require.True(t, ok)
	assert.Equal(t, models.MessageSent, message.Status)
	assert.Equal(t, "viewer-1", message.SenderID)

	thread := fx.store.Snapshot().MessageThreads[0]
	assert.Equal(t, testStart, thread.LastMessageAt)

	fx.clock.Advance(600 * time.Millisecond)
	assert.Equal(t, models.MessageDelivered, fx.store.Snapshot().MessageThreads[0].Messages[0].Status)

	fx.clock.Advance(1200 * time.Millisecond)
	assert.Equal(t, models.MessageSeen, fx.store.Snapshot().MessageThreads[0].Messages[0].Status)

	_, ok = fx.store.SendMessage("missing", "x")
	assert.False(t, ok)
}

func TestResetDiscardsScheduledWork(t *testing.T) {
	fx := newFixture(t)
	fx.hydrateGroups(testGroup("g-1"))
	fx.store.SubmitGroupApplication(GroupApplicationInput{GroupID: "g-1", Name: "A", Email: "a@example.com"})

	fx.store.Reset(nil)
	assert.Empty(t, fx.store.Snapshot().GroupApplications)

	// The stale approval timer fires into the fresh state.
	fx.clock.Advance(2 * time.Second)
	assert.Empty(t, fx.store.Snapshot().GroupApplications)
	assert.Empty(t, fx.store.Snapshot().Groups)
}

func TestHydratePartialMerge(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{
		ViewerID: "viewer-1",
		Jobs:     []models.JobPosting{{ID: "job-1"}},
	})

	// A partial with only groups must not clobber jobs or the viewer.
	fx.store.Hydrate(Snapshot{Groups: []models.Group{testGroup("g-1")}})

	snapshot := fx.store.Snapshot()
	assert.Equal(t, "viewer-1", snapshot.ViewerID)
	assert.Len(t, snapshot.Jobs, 1)
	assert.Len(t, snapshot.Groups, 1)
}

func TestUpdateViewer(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{
		ViewerID: "viewer-1",
		Users:    []models.UserProfile{{ID: "viewer-1", Name: "Old Name", Bio: "old bio"}},
	})

	name := "New Name"
	viewer, ok := fx.store.UpdateViewer(ViewerPatch{Name: &name})
	require.True(t, ok)
	assert.Equal(t, "New Name", viewer.Name)
	assert.Equal(t, "old bio", viewer.Bio, "absent fields stay untouched")

	fx.store.Reset(nil)
	_, ok = fx.store.UpdateViewer(ViewerPatch{Name: &name})
	assert.False(t, ok)
}

func TestDeleteDemoUserAnonymizes(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{
		ViewerID: "viewer-1",
		Users:    []models.UserProfile{{ID: "viewer-1", Name: "Deniz", Title: "Engineer"}},
		Posts:    []models.FeedPost{{ID: "p-1", AuthorID: "viewer-1"}},
	})

	viewer, ok := fx.store.DeleteDemoUser()
	require.True(t, ok)
	assert.Equal(t, "Demo User", viewer.Name)
	assert.Equal(t, "Community Member", viewer.Title)

	// Collections keep their entries; only the profile changes.
	assert.Len(t, fx.store.Snapshot().Posts, 1)
}

func TestSinkReceivesPersistedSubset(t *testing.T) {
	fx := newFixture(t)
	fx.store.Hydrate(Snapshot{
		ViewerID: "viewer-1",
		Users:    []models.UserProfile{{ID: "viewer-1"}},
	})

	fx.store.CreatePost("persist me", nil, nil)

	state, ok := fx.sink.last()
	require.True(t, ok)
	assert.Equal(t, "viewer-1", state.ViewerID)
	require.Len(t, state.Posts, 1)
	assert.Equal(t, "persist me", state.Posts[0].Content)
}

func TestSubscribeReceivesChangeEvents(t *testing.T) {
	fx := newFixture(t)

	var events []ChangeEvent
	fx.store.Subscribe(func(e ChangeEvent) { events = append(events, e) })

	post := fx.store.CreatePost("content", nil, nil)

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, "feed.post.created", last.Action)
	assert.Equal(t, post.ID, last.EntityID)
	assert.Equal(t, testStart, last.At)
}
