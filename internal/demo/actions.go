package demo

import (
	"math"

	"github.com/google/uuid"

	"github.com/koprumezun/mezunhub/internal/app/models"
)

// Identifiers are opaque, generated fresh on creation and never reused.
func newEntityID() string {
	return uuid.NewString()
}

// CreatePost constructs a post authored by the current viewer and prepends it
// to the feed.
func (s *Store) CreatePost(content string, tags []string, media []models.ContentMedia) models.FeedPost {
	s.mu.Lock()
	post := models.FeedPost{
		ID:        s.newID(),
		AuthorID:  s.state.ViewerID,
		Content:   content,
		CreatedAt: s.clock.Now(),
		Audience:  []string{"all"},
		Tags:      tags,
		Media:     media,
		Comments:  []models.Comment{},
		Reactions: map[models.ReactionType]int{models.ReactionLike: 1},
	}
	s.state.Posts = prepend(s.state.Posts, post)
	s.mu.Unlock()
	s.afterChange("feed.post.created", post.ID)
	return post
}

// ReactToPost bumps the given reaction counter on a post. Silent no-op when
// the post id does not resolve.
func (s *Store) ReactToPost(postID string, reaction models.ReactionType) (models.FeedPost, bool) {
	s.mu.Lock()
	var updated models.FeedPost
	found := false
	posts := make([]models.FeedPost, len(s.state.Posts))
	for i, post := range s.state.Posts {
		if post.ID == postID {
			reactions := make(map[models.ReactionType]int, len(post.Reactions)+1)
			for k, v := range post.Reactions {
				reactions[k] = v
			}
			reactions[reaction]++
			post.Reactions = reactions
			updated = post
			found = true
		}
		posts[i] = post
	}
	if !found {
		s.mu.Unlock()
		return models.FeedPost{}, false
	}
	s.state.Posts = posts
	s.mu.Unlock()
	s.afterChange("feed.post.reacted", postID)
	return updated, true
}

// AddComment prepends a comment to a post. Silent no-op when the post id does
// not resolve.
func (s *Store) AddComment(postID, authorID, content string) (models.Comment, bool) {
	s.mu.Lock()
	comment := models.Comment{
		ID:        s.newID(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: s.clock.Now(),
		Reactions: map[models.ReactionType]int{},
	}
	found := false
	posts := make([]models.FeedPost, len(s.state.Posts))
	for i, post := range s.state.Posts {
		if post.ID == postID {
			post.Comments = prepend(post.Comments, comment)
			found = true
		}
		posts[i] = post
	}
	if !found {
		s.mu.Unlock()
		return models.Comment{}, false
	}
	s.state.Posts = posts
	s.mu.Unlock()
	s.afterChange("feed.comment.added", comment.ID)
	return comment, true
}

// JoinGroup makes the viewer a member. Idempotent when already a member;
// memberCount moves only on the transition into member.
func (s *Store) JoinGroup(groupID string) (models.Group, bool) {
	s.mu.Lock()
	var updated models.Group
	found := false
	changed := false
	groups := make([]models.Group, len(s.state.Groups))
	for i, group := range s.state.Groups {
		if group.ID == groupID {
			found = true
			if group.MembershipStatus != models.MembershipMember {
				group.MembershipStatus = models.MembershipMember
				group.MemberCount++
				changed = true
			}
			updated = group
		}
		groups[i] = group
	}
	if !found {
		s.mu.Unlock()
		return models.Group{}, false
	}
	s.state.Groups = groups
	s.mu.Unlock()
	if changed {
		s.afterChange("group.joined", groupID)
	}
	return updated, true
}

// LeaveGroup drops the viewer's membership and clears any pending application
// for the group; a membership resolved another way makes an in-flight
// application meaningless.
func (s *Store) LeaveGroup(groupID string) (models.Group, bool) {
	s.mu.Lock()
	var updated models.Group
	found := false
	groups := make([]models.Group, len(s.state.Groups))
	for i, group := range s.state.Groups {
		if group.ID == groupID {
			found = true
			if group.MembershipStatus == models.MembershipMember {
				if group.MemberCount > 0 {
					group.MemberCount--
				}
			}
			group.MembershipStatus = models.MembershipInvited
			updated = group
		}
		groups[i] = group
	}
	if !found {
		s.mu.Unlock()
		return models.Group{}, false
	}
	s.state.Groups = groups
	s.state.GroupApplications = dropPendingApplications(s.state.GroupApplications, groupID)
	s.mu.Unlock()
	s.afterChange("group.left", groupID)
	return updated, true
}

// GroupApplicationInput carries the applicant contact fields. Field-level
// validation is a caller concern; the store only requires the group to exist.
type GroupApplicationInput struct {
	GroupID string
	Name    string
	Email   string
	Phone   string
}

// SubmitGroupApplication creates a pending application, superseding any prior
// pending one for the same group, and marks the group's membership pending
// unless the viewer is already a member. Auto-approval is scheduled after the
// configured delay; the deferred callback re-checks that the application is
// still pending, so a reset or a superseding submission makes it a no-op.
func (s *Store) SubmitGroupApplication(in GroupApplicationInput) (models.GroupApplication, bool) {
	s.mu.Lock()
	groupFound := false
	groups := make([]models.Group, len(s.state.Groups))
	for i, group := range s.state.Groups {
		if group.ID == in.GroupID {
			groupFound = true
			if group.MembershipStatus != models.MembershipMember {
				group.MembershipStatus = models.MembershipPending
			}
		}
		groups[i] = group
	}
	if !groupFound {
		s.mu.Unlock()
		return models.GroupApplication{}, false
	}

	application := models.GroupApplication{
		ID:          s.newID(),
		GroupID:     in.GroupID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Status:      models.ApplicationPending,
		SubmittedAt: s.clock.Now(),
	}
	s.state.Groups = groups
	s.state.GroupApplications = prepend(dropPendingApplications(s.state.GroupApplications, in.GroupID), application)
	s.mu.Unlock()

	s.scheduler.AfterFunc(s.approvalDelay, func() {
		s.ApproveGroupApplication(application.ID)
	})

	s.afterChange("group.application.submitted", application.ID)
	return application, true
}

// ApproveGroupApplication resolves a pending application: the application
// becomes approved and the group membership is promoted to member with a
// single memberCount increment. Idempotent against an already-approved
// application, which is what keeps a stale auto-approval timer harmless.
func (s *Store) ApproveGroupApplication(applicationID string) (models.GroupApplication, bool) {
	s.mu.Lock()
	var approved models.GroupApplication
	found := false
	already := false
	applications := make([]models.GroupApplication, len(s.state.GroupApplications))
	for i, application := range s.state.GroupApplications {
		if application.ID == applicationID {
			found = true
			if application.Status != models.ApplicationPending {
				already = true
			} else {
				application.Status = models.ApplicationApproved
			}
			approved = application
		}
		applications[i] = application
	}
	if !found {
		s.mu.Unlock()
		return models.GroupApplication{}, false
	}
	if already {
		s.mu.Unlock()
		return approved, true
	}
	s.state.GroupApplications = applications

	groups := make([]models.Group, len(s.state.Groups))
	for i, group := range s.state.Groups {
		if group.ID == approved.GroupID && group.MembershipStatus != models.MembershipMember {
			group.MembershipStatus = models.MembershipMember
			group.MemberCount++
		}
		groups[i] = group
	}
	s.state.Groups = groups
	s.mu.Unlock()
	s.afterChange("group.application.approved", applicationID)
	return approved, true
}

// RequestMentor creates a pending mentor request and schedules its automatic
// resolution after the configured delay.
func (s *Store) RequestMentor(mentorID string, goals []string) models.MentorRequest {
	s.mu.Lock()
	request := models.MentorRequest{
		ID:        s.newID(),
		MentorID:  mentorID,
		Goals:     goals,
		Status:    models.MentorRequestPending,
		CreatedAt: s.clock.Now(),
	}
	s.state.MentorRequests = prepend(s.state.MentorRequests, request)
	s.mu.Unlock()

	s.scheduler.AfterFunc(s.mentorResolveDelay, func() {
		s.CompleteMentorRequest(request.ID)
	})

	s.afterChange("mentoring.request.created", request.ID)
	return request
}

// CompleteMentorRequest resolves a pending request to accepted (with the
// configured probability) or scheduled, sampled independently per request.
// Acceptance creates a mentorship match seeded at the starting progress.
// Idempotent against an already-resolved request.
func (s *Store) CompleteMentorRequest(requestID string) (models.MentorRequest, bool) {
	s.mu.Lock()
	var resolved models.MentorRequest
	found := false
	already := false
	requests := make([]models.MentorRequest, len(s.state.MentorRequests))
	for i, request := range s.state.MentorRequests {
		if request.ID == requestID {
			found = true
			if request.Status != models.MentorRequestPending {
				already = true
			} else if s.randFloat() < s.acceptProbability {
				request.Status = models.MentorRequestAccepted
			} else {
				request.Status = models.MentorRequestScheduled
			}
			resolved = request
		}
		requests[i] = request
	}
	if !found {
		s.mu.Unlock()
		return models.MentorRequest{}, false
	}
	if already {
		s.mu.Unlock()
		return resolved, true
	}
	s.state.MentorRequests = requests

	if resolved.Status == models.MentorRequestAccepted {
		match := models.MentorshipMatch{
			ID:       s.newID(),
			MentorID: resolved.MentorID,
			MenteeID: s.state.ViewerID,
			Goals:    resolved.Goals,
			Progress: matchInitialProgress,
			Status:   models.MatchInProgress,
		}
		s.state.Mentorships = prepend(s.state.Mentorships, match)
	}
	s.mu.Unlock()
	s.afterChange("mentoring.request.resolved", requestID)
	return resolved, true
}

// ScheduleFlashSession books an upcoming ten-minute session one hour out.
func (s *Store) ScheduleFlashSession(mentorID, topic string) models.FlashSession {
	s.mu.Lock()
	session := models.FlashSession{
		ID:              s.newID(),
		MentorID:        mentorID,
		StartTime:       s.clock.Now().Add(flashSessionLead),
		DurationMinutes: flashSessionMinutes,
		Topic:           topic,
		Status:          models.FlashUpcoming,
	}
	s.state.FlashSessions = prepend(s.state.FlashSessions, session)
	s.mu.Unlock()
	s.afterChange("mentoring.flash.scheduled", session.ID)
	return session
}

// ApplyToJob is idempotent per job: it returns the existing application when
// one exists, otherwise creates one in applied status.
func (s *Store) ApplyToJob(jobID string) models.JobApplication {
	s.mu.Lock()
	for _, application := range s.state.JobApplications {
		if application.JobID == jobID {
			s.mu.Unlock()
			return application
		}
	}
	application := models.JobApplication{
		ID:        s.newID(),
		JobID:     jobID,
		Status:    models.StageApplied,
		UpdatedAt: s.clock.Now(),
	}
	s.state.JobApplications = prepend(s.state.JobApplications, application)
	s.mu.Unlock()
	s.afterChange("career.application.created", application.ID)
	return application
}

// ToggleSaveJob flips the saved flag. Silent no-op when the job is missing.
func (s *Store) ToggleSaveJob(jobID string) (models.JobPosting, bool) {
	s.mu.Lock()
	var updated models.JobPosting
	found := false
	jobs := make([]models.JobPosting, len(s.state.Jobs))
	for i, job := range s.state.Jobs {
		if job.ID == jobID {
			job.Saved = !job.Saved
			updated = job
			found = true
		}
		jobs[i] = job
	}
	if !found {
		s.mu.Unlock()
		return models.JobPosting{}, false
	}
	s.state.Jobs = jobs
	s.mu.Unlock()
	s.afterChange("career.job.save_toggled", jobID)
	return updated, true
}

// AnalyzeResume produces a pseudo-random score in [70,95) and recommends up
// to three alumni profiles.
func (s *Store) AnalyzeResume(highlights, suggestions []string) models.ResumeAnalysis {
	s.mu.Lock()
	var recommended []string
	for _, user := range s.state.Users {
		if user.Role == models.RoleAlumni {
			recommended = append(recommended, user.ID)
			if len(recommended) == maxRecommendedAlumni {
				break
			}
		}
	}
	analysis := models.ResumeAnalysis{
		ID:                s.newID(),
		Score:             70 + int(s.randFloat()*25),
		Highlights:        highlights,
		Suggestions:       suggestions,
		RecommendedAlumni: recommended,
	}
	s.state.ResumeAnalyses = prepend(s.state.ResumeAnalyses, analysis)
	s.mu.Unlock()
	s.afterChange("career.resume.analyzed", analysis.ID)
	return analysis
}

// RegisterEvent registers the viewer for an event. Sold-out events and
// repeated registrations are no-ops; attendees never exceeds capacity; a
// priced available ticket flips to purchased on first registration.
func (s *Store) RegisterEvent(eventID string) (models.Event, bool) {
	s.mu.Lock()
	var updated models.Event
	found := false
	changed := false
	events := make([]models.Event, len(s.state.Events))
	for i, event := range s.state.Events {
		if event.ID == eventID {
			found = true
			if event.TicketStatus != models.TicketSoldOut && !event.Registered {
				event.Registered = true
				if event.Attendees < event.Capacity {
					event.Attendees++
				}
				if event.TicketStatus == models.TicketAvailable && event.TicketPrice > 0 {
					event.TicketStatus = models.TicketPurchased
				}
				changed = true
			}
			updated = event
		}
		events[i] = event
	}
	if !found {
		s.mu.Unlock()
		return models.Event{}, false
	}
	s.state.Events = events
	s.mu.Unlock()
	if changed {
		s.afterChange("event.registered", eventID)
	}
	return updated, true
}

// EventInput carries caller-supplied fields for event creation; unset
// optional fields get generator defaults.
type EventInput struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
	Type        models.EventType
	Tags        []string
	Capacity    int
	Currency    string
	TicketPrice float64
}

// CreateEvent creates an event organized by the viewer. The organizer counts
// as the first attendee.
func (s *Store) CreateEvent(in EventInput) models.Event {
	if in.Type == "" {
		in.Type = models.EventInPerson
	}
	if in.Capacity <= 0 {
		in.Capacity = defaultEventCapacity
	}
	var ticketStatus models.TicketStatus
	if in.TicketPrice > 0 {
		ticketStatus = models.TicketAvailable
		if in.Currency == "" {
			in.Currency = "TRY"
		}
	}

	s.mu.Lock()
	event := models.Event{
		ID:           s.newID(),
		Title:        in.Title,
		Description:  in.Description,
		Date:         in.Date,
		Time:         in.Time,
		Location:     in.Location,
		Type:         in.Type,
		Tags:         in.Tags,
		Capacity:     in.Capacity,
		Attendees:    1,
		OrganizerID:  s.state.ViewerID,
		Currency:     in.Currency,
		TicketPrice:  in.TicketPrice,
		TicketStatus: ticketStatus,
	}
	s.state.Events = prepend(s.state.Events, event)
	s.mu.Unlock()
	s.afterChange("event.created", event.ID)
	return event
}

// DonateToCampaign adds a donation and recomputes the derived progress.
// Non-positive amounts and unknown campaigns leave the state unchanged.
func (s *Store) DonateToCampaign(campaignID string, amount float64) (models.FundraisingCampaign, bool) {
	s.mu.Lock()
	var updated models.FundraisingCampaign
	found := false
	changed := false
	campaigns := make([]models.FundraisingCampaign, len(s.state.Campaigns))
	for i, campaign := range s.state.Campaigns {
		if campaign.ID == campaignID {
			found = true
			if amount > 0 {
				campaign.Raised += amount
				campaign.Donors++
				if campaign.Goal > 0 {
					progress := int(math.Round(campaign.Raised / campaign.Goal * 100))
					if progress > 100 {
						progress = 100
					}
					campaign.Progress = progress
				}
				changed = true
			}
			updated = campaign
		}
		campaigns[i] = campaign
	}
	if !found {
		s.mu.Unlock()
		return models.FundraisingCampaign{}, false
	}
	s.state.Campaigns = campaigns
	s.mu.Unlock()
	if changed {
		s.afterChange("fundraising.donation.received", campaignID)
	}
	return updated, true
}

// CampaignInput carries caller-supplied fields for campaign creation.
type CampaignInput struct {
	Name        string
	Description string
	Goal        float64
}

// CreateCampaign creates a fresh campaign with zeroed counters.
func (s *Store) CreateCampaign(in CampaignInput) models.FundraisingCampaign {
	s.mu.Lock()
	campaign := models.FundraisingCampaign{
		ID:               s.newID(),
		Name:             in.Name,
		Description:      in.Description,
		Goal:             in.Goal,
		ImpactHighlights: []string{},
	}
	s.state.Campaigns = prepend(s.state.Campaigns, campaign)
	s.mu.Unlock()
	s.afterChange("fundraising.campaign.created", campaign.ID)
	return campaign
}

// BadgeInput carries caller-supplied fields for earning a badge.
type BadgeInput struct {
	Name        string
	Description string
	Tier        models.BadgeTier
}

// EarnBadge records a newly earned badge.
func (s *Store) EarnBadge(in BadgeInput) models.Badge {
	s.mu.Lock()
	badge := models.Badge{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		EarnedAt:    s.clock.Now(),
		Tier:        in.Tier,
	}
	s.state.Badges = prepend(s.state.Badges, badge)
	s.mu.Unlock()
	s.afterChange("engagement.badge.earned", badge.ID)
	return badge
}

// SubmitChallengeProof credits the top leaderboard entry with the score boost
// and bumps the challenge's submission counter. First-place auto-credit is a
// deliberately simplistic scoring policy, not per-user attribution.
func (s *Store) SubmitChallengeProof(challengeID string, scoreBoost int) (models.Challenge, bool) {
	s.mu.Lock()
	var updated models.Challenge
	found := false
	challenges := make([]models.Challenge, len(s.state.Challenges))
	for i, challenge := range s.state.Challenges {
		if challenge.ID == challengeID {
			found = true
			leaderboard := make([]models.LeaderboardEntry, len(challenge.Leaderboard))
			copy(leaderboard, challenge.Leaderboard)
			if len(leaderboard) > 0 {
				leaderboard[0].Score += scoreBoost
			}
			challenge.Leaderboard = leaderboard
			challenge.Submissions++
			updated = challenge
		}
		challenges[i] = challenge
	}
	if !found {
		s.mu.Unlock()
		return models.Challenge{}, false
	}
	s.state.Challenges = challenges
	s.mu.Unlock()
	s.afterChange("engagement.challenge.proof", challengeID)
	return updated, true
}

// ClaimPerk marks a perk claimed. Idempotent.
func (s *Store) ClaimPerk(perkID string) (models.Perk, bool) {
	s.mu.Lock()
	var updated models.Perk
	found := false
	perks := make([]models.Perk, len(s.state.Perks))
	for i, perk := range s.state.Perks {
		if perk.ID == perkID {
			perk.Claimed = true
			updated = perk
			found = true
		}
		perks[i] = perk
	}
	if !found {
		s.mu.Unlock()
		return models.Perk{}, false
	}
	s.state.Perks = perks
	s.mu.Unlock()
	s.afterChange("engagement.perk.claimed", perkID)
	return updated, true
}

// ReplyToThread prepends a reply to a forum thread. Silent no-op when the
// thread is missing.
func (s *Store) ReplyToThread(threadID, authorID, content string) (models.Comment, bool) {
	s.mu.Lock()
	reply := models.Comment{
		ID:        s.newID(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: s.clock.Now(),
		Reactions: map[models.ReactionType]int{},
	}
	found := false
	threads := make([]models.ForumThread, len(s.state.Threads))
	for i, thread := range s.state.Threads {
		if thread.ID == threadID {
			thread.Replies = prepend(thread.Replies, reply)
			found = true
		}
		threads[i] = thread
	}
	if !found {
		s.mu.Unlock()
		return models.Comment{}, false
	}
	s.state.Threads = threads
	s.mu.Unlock()
	s.afterChange("forum.reply.added", reply.ID)
	return reply, true
}

// SendMessage appends a message to a thread in sent status and schedules its
// monotonic progression to delivered and seen. Each deferred step only moves
// the status forward.
func (s *Store) SendMessage(threadID, body string) (models.Message, bool) {
	s.mu.Lock()
	message := models.Message{
		ID:       s.newID(),
		SenderID: s.state.ViewerID,
		Body:     body,
		SentAt:   s.clock.Now(),
		Status:   models.MessageSent,
	}
	found := false
	threads := make([]models.MessageThread, len(s.state.MessageThreads))
	for i, thread := range s.state.MessageThreads {
		if thread.ID == threadID {
			messages := make([]models.Message, 0, len(thread.Messages)+1)
			messages = append(messages, thread.Messages...)
			messages = append(messages, message)
			thread.Messages = messages
			thread.LastMessageAt = message.SentAt
			found = true
		}
		threads[i] = thread
	}
	if !found {
		s.mu.Unlock()
		return models.Message{}, false
	}
	s.state.MessageThreads = threads
	s.mu.Unlock()

	s.scheduler.AfterFunc(s.messageDeliverDelay, func() {
		s.advanceMessage(threadID, message.ID, models.MessageDelivered)
	})
	s.scheduler.AfterFunc(s.messageSeenDelay, func() {
		s.advanceMessage(threadID, message.ID, models.MessageSeen)
	})

	s.afterChange("message.sent", message.ID)
	return message, true
}

var messageStatusRank = map[models.MessageStatus]int{
	models.MessageSent:      0,
	models.MessageDelivered: 1,
	models.MessageSeen:      2,
}

func (s *Store) advanceMessage(threadID, messageID string, status models.MessageStatus) {
	s.mu.Lock()
	changed := false
	threads := make([]models.MessageThread, len(s.state.MessageThreads))
	for i, thread := range s.state.MessageThreads {
		if thread.ID == threadID {
			messages := make([]models.Message, len(thread.Messages))
			for j, message := range thread.Messages {
				if message.ID == messageID && messageStatusRank[status] > messageStatusRank[message.Status] {
					message.Status = status
					changed = true
				}
				messages[j] = message
			}
			thread.Messages = messages
		}
		threads[i] = thread
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	s.state.MessageThreads = threads
	s.mu.Unlock()
	s.afterChange("message.status", messageID)
}

func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	out = append(out, items...)
	return out
}

func dropPendingApplications(applications []models.GroupApplication, groupID string) []models.GroupApplication {
	out := make([]models.GroupApplication, 0, len(applications))
	for _, application := range applications {
		if application.GroupID == groupID && application.Status == models.ApplicationPending {
			continue
		}
		out = append(out, application)
	}
	return out
}
