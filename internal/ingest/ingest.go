// Package ingest shapes raw upstream records into the domain model. The
// upstream source supplies no team, progress, or scheduling data, so those
// fields are synthesized from an injectable random source.
package ingest

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/ganot/pulseboard/internal/domain/project"
	"github.com/ganot/pulseboard/internal/domain/user"
	"github.com/ganot/pulseboard/internal/upstream"
)

// Team size bounds for ingested projects.
const (
	MinTeamSize = 2
	MaxTeamSize = 5
)

// Deadline offset bounds, in days from ingestion time.
const (
	MinDeadlineDays = 10
	MaxDeadlineDays = 120
)

// Rand produces uniform random integers. Production wiring uses
// math/rand/v2; tests supply a fixed sequence.
type Rand interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// Fetcher retrieves the raw upstream collections.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]upstream.RawUser, []upstream.RawPost, error)
}

// Option customizes an Ingestor.
type Option func(*Ingestor)

// WithRand replaces the random source.
func WithRand(r Rand) Option {
	return func(ing *Ingestor) { ing.rand = r }
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(ing *Ingestor) { ing.now = now }
}

// WithAvatarTemplate replaces the avatar URL template.
func WithAvatarTemplate(template string) Option {
	return func(ing *Ingestor) { ing.avatarTemplate = template }
}

// Ingestor fetches and transforms the upstream collections.
type Ingestor struct {
	fetcher        Fetcher
	rand           Rand
	now            func() time.Time
	avatarTemplate string
	logger         *slog.Logger
}

type entropyRand struct{}

func (entropyRand) IntN(n int) int { return rand.IntN(n) }

// New creates an ingestor with a real entropy source and wall clock.
func New(fetcher Fetcher, logger *slog.Logger, opts ...Option) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	ing := &Ingestor{
		fetcher:        fetcher,
		rand:           entropyRand{},
		now:            time.Now,
		avatarTemplate: user.DefaultAvatarTemplate,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(ing)
	}
	return ing
}

// Ingest retrieves both upstream collections and produces the domain
// collections. When either retrieval fails, nothing is returned: partial
// results are never applied.
func (ing *Ingestor) Ingest(ctx context.Context) ([]user.User, []project.Project, error) {
	rawUsers, rawPosts, err := ing.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	users := TransformUsers(rawUsers, ing.avatarTemplate)
	projects := ing.transformProjects(users, rawPosts)

	ing.logger.Info("ingestion complete", "users", len(users), "projects", len(projects))
	return users, projects, nil
}

// TransformUsers maps raw user records to domain users, deriving the avatar
// reference from the user ID.
func TransformUsers(raw []upstream.RawUser, avatarTemplate string) []user.User {
	users := make([]user.User, 0, len(raw))
	for _, r := range raw {
		users = append(users, user.User{
			ID:        r.ID,
			Name:      r.Name,
			Username:  r.Username,
			Email:     r.Email,
			AvatarURL: user.AvatarURL(r.ID, avatarTemplate),
		})
	}
	return users
}

func (ing *Ingestor) transformProjects(users []user.User, posts []upstream.RawPost) []project.Project {
	userIDs := make([]int, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}

	now := ing.now()
	priorities := project.Priorities()
	statuses := project.Statuses()

	projects := make([]project.Project, 0, len(posts))
	for i, post := range posts {
		progress := ing.intRange(0, 100)
		days := ing.intRange(MinDeadlineDays, MaxDeadlineDays)

		projects = append(projects, project.Project{
			ID:             project.FormatID(i + 1),
			Title:          project.TruncateTitle(post.Title),
			Description:    post.Body,
			CreatedBy:      post.UserID,
			Team:           ing.sampleTeam(userIDs),
			Priority:       priorities[ing.rand.IntN(len(priorities))],
			Status:         statuses[ing.rand.IntN(len(statuses))],
			Progress:       progress,
			TotalTasks:     project.DefaultTotalTasks,
			TasksCompleted: TasksCompleted(progress, project.DefaultTotalTasks),
			Deadline:       now.AddDate(0, 0, days),
			CreatedAt:      now,
		})
	}
	return projects
}

// sampleTeam draws k distinct user IDs, k uniform in [MinTeamSize,
// MaxTeamSize], via a Fisher-Yates shuffle truncated to the first k
// elements. Smaller user collections cap k at the collection size.
func (ing *Ingestor) sampleTeam(userIDs []int) []int {
	k := ing.intRange(MinTeamSize, MaxTeamSize)
	if k > len(userIDs) {
		k = len(userIDs)
	}

	shuffled := make([]int, len(userIDs))
	copy(shuffled, userIDs)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := ing.rand.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:k]
}

// TasksCompleted derives the completed-task count from a progress
// percentage.
func TasksCompleted(progress, totalTasks int) int {
	return int(math.Round(float64(progress) / 100 * float64(totalTasks)))
}

// intRange returns a uniform integer in [min, max].
func (ing *Ingestor) intRange(min, max int) int {
	return min + ing.rand.IntN(max-min+1)
}
