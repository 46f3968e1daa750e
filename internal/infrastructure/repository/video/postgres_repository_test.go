package video_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domain "video-catalog-api/internal/domain/video"
	videorepo "video-catalog-api/internal/infrastructure/repository/video"
)

// sqlRecorder captures the SQL that GORM generates so listing queries can be
// asserted without a live database.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(gormlogger.LogLevel) gormlogger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{})    {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{})    {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{})   {}

func (r *sqlRecorder) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func newDryRunRepository(t *testing.T) (*videorepo.PostgresRepository, *sqlRecorder) {
	t.Helper()
	recorder := &sqlRecorder{}
	db, err := gorm.Open(postgres.Open("host=localhost user=catalog dbname=catalog"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               recorder,
	})
	if err != nil {
		t.Fatalf("open dry-run session: %v", err)
	}
	return videorepo.NewPostgresRepository(db), recorder
}

func (r *sqlRecorder) pageQuery(t *testing.T) string {
	t.Helper()
	for _, stmt := range r.statements {
		if !strings.Contains(stmt, "count(*)") && strings.Contains(stmt, "SELECT") {
			return stmt
		}
	}
	t.Fatalf("no page query recorded, got %v", r.statements)
	return ""
}

func (r *sqlRecorder) countQuery(t *testing.T) string {
	t.Helper()
	for _, stmt := range r.statements {
		if strings.Contains(stmt, "count(*)") {
			return stmt
		}
	}
	t.Fatalf("no count query recorded, got %v", r.statements)
	return ""
}

func TestList_PageWindowAndOrdering(t *testing.T) {
	repo, recorder := newDryRunRepository(t)

	_, _, err := repo.List(context.Background(), domain.NewFilter().WithCategory("music").WithPage(3).WithLimit(5))
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	page := recorder.pageQuery(t)

	if !strings.Contains(page, "ORDER BY videos.created_at DESC, videos.id DESC") {
		t.Errorf("listing must order by created_at with the id tiebreaker, got: %s", page)
	}
	if !strings.Contains(page, "LIMIT 5") {
		t.Errorf("page window must be capped at the requested limit, got: %s", page)
	}
	if !strings.Contains(page, "OFFSET 10") {
		t.Errorf("page 3 with limit 5 must skip the 10 rows of earlier pages, got: %s", page)
	}
	if !strings.Contains(page, "LEFT JOIN categories") || !strings.Contains(page, "LEFT JOIN users") {
		t.Errorf("listing must join categories and users, got: %s", page)
	}
	if !strings.Contains(page, "categories.name = 'music'") {
		t.Errorf("category filter must constrain the joined name, got: %s", page)
	}
}

func TestList_CountSharesFilter(t *testing.T) {
	repo, recorder := newDryRunRepository(t)

	_, _, err := repo.List(context.Background(), domain.NewFilter().WithCategory("music"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	count := recorder.countQuery(t)
	if !strings.Contains(count, "categories.name = 'music'") {
		t.Errorf("count must apply the same category filter as the page, got: %s", count)
	}
	if strings.Contains(count, "LIMIT") || strings.Contains(count, "OFFSET") {
		t.Errorf("count must span the whole filtered set, got: %s", count)
	}
}

// Consecutive pages must request adjacent, non-overlapping row windows; with
// the total order above, an identifier on page P can never reappear on P+1.
func TestList_ConsecutivePagesAreDisjoint(t *testing.T) {
	windows := map[int]string{}
	for _, page := range []int{1, 2, 3} {
		repo, recorder := newDryRunRepository(t)
		if _, _, err := repo.List(context.Background(), domain.NewFilter().WithPage(page).WithLimit(12)); err != nil {
			t.Fatalf("list page %d: %v", page, err)
		}
		windows[page] = recorder.pageQuery(t)
	}

	if strings.Contains(windows[1], "OFFSET") {
		t.Errorf("page 1 must start at the first row, got: %s", windows[1])
	}
	if !strings.Contains(windows[2], "OFFSET 12") {
		t.Errorf("page 2 must start where page 1 ended, got: %s", windows[2])
	}
	if !strings.Contains(windows[3], "OFFSET 24") {
		t.Errorf("page 3 must start where page 2 ended, got: %s", windows[3])
	}
	for page, sql := range windows {
		if !strings.Contains(sql, "LIMIT 12") {
			t.Errorf("page %d must cap the window at the limit, got: %s", page, sql)
		}
	}
}
