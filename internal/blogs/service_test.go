package blogs

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/craftroots/craftroots-backend/pkg/db/models"
	"github.com/craftroots/craftroots-backend/pkg/enums"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/pagination"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:blogs_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Blog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return conn
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := openTestDB(t)
	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, conn
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Caring for Silk Sarees", "caring-for-silk-sarees"},
		{"  Weaving: A Beginner's Guide!  ", "weaving-a-beginner-s-guide"},
		{"100% Handloom", "100-handloom"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCreateBlogDefaultsToDraft(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	blog, err := svc.Create(ctx, CreateBlogInput{
		Title:   "Caring for Silk Sarees",
		Content: "Wash gently.",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if blog.Status != enums.BlogStatusDraft {
		t.Fatalf("expected draft status, got %s", blog.Status)
	}
	if blog.Slug != "caring-for-silk-sarees" {
		t.Fatalf("unexpected slug %q", blog.Slug)
	}
	if blog.PublishedAt != nil {
		t.Fatal("draft must not carry a published timestamp")
	}
}

func TestCreateBlogPublishedSetsTimestamp(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	blog, err := svc.Create(context.Background(), CreateBlogInput{
		Title:   "Festival Looks",
		Content: "...",
		Status:  enums.BlogStatusPublished,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if blog.PublishedAt == nil {
		t.Fatal("published blog must carry a published timestamp")
	}
}

func TestCreateBlogSlugCollisionGetsSuffix(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateBlogInput{Title: "Handloom Guide", Content: "a"})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.Create(ctx, CreateBlogInput{Title: "Handloom Guide", Content: "b"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.Slug == first.Slug {
		t.Fatal("colliding titles must not share a slug")
	}
	if !strings.HasPrefix(second.Slug, "handloom-guide-") {
		t.Fatalf("expected suffixed slug, got %q", second.Slug)
	}
}

func TestCreateBlogRejectsUnsluggableTitle(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateBlogInput{Title: "!!!", Content: "x"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetPublishedBySlugHidesDrafts(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	draft, err := svc.Create(ctx, CreateBlogInput{Title: "Hidden Draft", Content: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.GetPublishedBySlug(ctx, draft.Slug)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for draft slug, got %v", err)
	}

	published := enums.BlogStatusPublished
	if _, err := svc.Update(ctx, draft.ID, UpdateBlogInput{Status: &published}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	got, err := svc.GetPublishedBySlug(ctx, draft.Slug)
	if err != nil {
		t.Fatalf("get published: %v", err)
	}
	if got.ID != draft.ID {
		t.Fatal("wrong blog returned")
	}
}

func TestUpdateBlogPublishCycleManagesTimestamp(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	blog, err := svc.Create(ctx, CreateBlogInput{Title: "Timestamps", Content: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	published := enums.BlogStatusPublished
	blog, err = svc.Update(ctx, blog.ID, UpdateBlogInput{Status: &published})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if blog.PublishedAt == nil {
		t.Fatal("publishing must set the timestamp")
	}

	draft := enums.BlogStatusDraft
	blog, err = svc.Update(ctx, blog.ID, UpdateBlogInput{Status: &draft})
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if blog.PublishedAt != nil {
		t.Fatal("unpublishing must clear the timestamp")
	}
}

func TestUpdateBlogTitleRegeneratesSlug(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	blog, err := svc.Create(ctx, CreateBlogInput{Title: "Old Title", Content: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Completely New Title"
	blog, err = svc.Update(ctx, blog.ID, UpdateBlogInput{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if blog.Slug != "completely-new-title" {
		t.Fatalf("expected regenerated slug, got %q", blog.Slug)
	}
}

func TestListBlogsStatusFilterAndPagination(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i, status := range []enums.BlogStatus{
		enums.BlogStatusPublished,
		enums.BlogStatusPublished,
		enums.BlogStatusDraft,
	} {
		if _, err := svc.Create(ctx, CreateBlogInput{
			Title:   "Post " + string(rune('A'+i)),
			Content: "x",
			Status:  status,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	published := enums.BlogStatusPublished
	posts, total, err := svc.List(ctx, Filter{Status: &published}, pagination.Params{Page: 1, Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 published posts, got %d", total)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post on the page, got %d", len(posts))
	}
}

func TestDeleteBlog(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	blog, err := svc.Create(ctx, CreateBlogInput{Title: "Doomed", Content: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, blog.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	err = svc.Delete(ctx, blog.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found on double delete, got %v", err)
	}
}
