package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koprumezun/mezunhub/internal/app/models"
)

func TestSnapshotViewerExists(t *testing.T) {
	snapshot := Snapshot()
	require.Equal(t, ViewerID, snapshot.ViewerID)

	found := false
	for _, user := range snapshot.Users {
		if user.ID == ViewerID {
			found = true
		}
	}
	assert.True(t, found, "viewer profile must be present in the user directory")
}

func TestSnapshotReferentialIntegrity(t *testing.T) {
	snapshot := Snapshot()

	users := map[string]bool{}
	for _, user := range snapshot.Users {
		users[user.ID] = true
	}

	for _, post := range snapshot.Posts {
		assert.True(t, users[post.AuthorID], "post %s has unknown author %s", post.ID, post.AuthorID)
		for _, comment := range post.Comments {
			assert.True(t, users[comment.AuthorID], "comment %s has unknown author %s", comment.ID, comment.AuthorID)
		}
	}

	for _, match := range snapshot.Mentorships {
		assert.True(t, users[match.MentorID], "match %s has unknown mentor %s", match.ID, match.MentorID)
		assert.True(t, users[match.MenteeID], "match %s has unknown mentee %s", match.ID, match.MenteeID)
	}
}

func TestSnapshotEventInvariants(t *testing.T) {
	snapshot := Snapshot()
	require.NotEmpty(t, snapshot.Events)

	soldOutSeen := false
	for _, event := range snapshot.Events {
		assert.LessOrEqual(t, event.Attendees, event.Capacity, "event %s overbooked", event.ID)
		if event.TicketStatus == models.TicketSoldOut {
			soldOutSeen = true
			assert.Equal(t, event.Capacity, event.Attendees, "sold out event %s should be at capacity", event.ID)
		}
	}
	assert.True(t, soldOutSeen, "the dataset should demonstrate a sold-out event")
}

func TestSnapshotCampaignProgress(t *testing.T) {
	snapshot := Snapshot()
	require.NotEmpty(t, snapshot.Campaigns)

	for _, campaign := range snapshot.Campaigns {
		assert.Greater(t, campaign.Goal, 0.0, "campaign %s needs a goal", campaign.ID)
		assert.GreaterOrEqual(t, campaign.Progress, 0)
		assert.LessOrEqual(t, campaign.Progress, 100)
	}
}

func TestSnapshotMentorsAvailable(t *testing.T) {
	snapshot := Snapshot()

	mentors := 0
	for _, user := range snapshot.Users {
		if user.Role == models.RoleMentor {
			mentors++
		}
	}
	assert.GreaterOrEqual(t, mentors, 2, "the mentoring directory needs mentors to request")
}

func TestSnapshotChallengeLeaderboard(t *testing.T) {
	snapshot := Snapshot()
	require.NotEmpty(t, snapshot.Challenges)

	for _, challenge := range snapshot.Challenges {
		assert.NotEmpty(t, challenge.Leaderboard, "challenge %s needs a leaderboard for proof crediting", challenge.ID)
	}
}
