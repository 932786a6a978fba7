package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pro-tasker/tasker-api/internal/core/domain"
	"github.com/pro-tasker/tasker-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type projectFixture struct {
	svc      *ProjectService
	projects *stubProjectRepo
	tasks    *stubTaskRepo
	users    *stubUserRepo
}

func newProjectFixture() *projectFixture {
	projects := newStubProjectRepo()
	tasks := newStubTaskRepo()
	users := newStubUserRepo()
	return &projectFixture{
		svc:      NewProjectService(projects, tasks, users, discardLogger),
		projects: projects,
		tasks:    tasks,
		users:    users,
	}
}

func (f *projectFixture) seedUser(t *testing.T, name, email string) *domain.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), &domain.User{Name: name, Email: email})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func (f *projectFixture) seedProject(t *testing.T, ownerID, title string) *domain.Project {
	t.Helper()
	p, err := f.svc.Create(context.Background(), ownerID, ports.CreateProjectInput{Title: title})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return p
}

// ---------------------------------------------------------------------------
// Create / List
// ---------------------------------------------------------------------------

func TestProjectService_Create_Success(t *testing.T) {
	f := newProjectFixture()

	p, err := f.svc.Create(context.Background(), "user_1", ports.CreateProjectInput{
		Title:       "  Launch  ",
		Description: " first release ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Launch" {
		t.Errorf("expected trimmed title, got %q", p.Title)
	}
	if p.Description != "first release" {
		t.Errorf("expected trimmed description, got %q", p.Description)
	}
	if p.OwnerID != "user_1" {
		t.Errorf("expected owner user_1, got %q", p.OwnerID)
	}
	if len(p.Collaborators) != 0 {
		t.Errorf("new project must have no collaborators, got %v", p.Collaborators)
	}
}

func TestProjectService_Create_TitleRequired(t *testing.T) {
	f := newProjectFixture()

	for _, title := range []string{"", "   "} {
		if _, err := f.svc.Create(context.Background(), "user_1", ports.CreateProjectInput{Title: title}); !errors.Is(err, domain.ErrTitleRequired) {
			t.Errorf("title %q: expected ErrTitleRequired, got %v", title, err)
		}
	}
}

func TestProjectService_List_OwnedOnly(t *testing.T) {
	f := newProjectFixture()
	f.seedProject(t, "user_1", "Mine")
	f.seedProject(t, "user_2", "Theirs")

	projects, err := f.svc.List(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "Mine" {
		t.Fatalf("expected only owned project, got %+v", projects)
	}
}

// ---------------------------------------------------------------------------
// Owner-only access
// ---------------------------------------------------------------------------

func TestProjectService_Get_OwnerOnly(t *testing.T) {
	f := newProjectFixture()
	p := f.seedProject(t, "user_1", "Launch")

	if _, err := f.svc.Get(context.Background(), "user_1", p.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}

	// Even a collaborator may not read the project resource itself.
	if err := f.projects.AddCollaborator(context.Background(), p.ID, "user_2"); err != nil {
		t.Fatalf("add collaborator: %v", err)
	}
	if _, err := f.svc.Get(context.Background(), "user_2", p.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for collaborator, got %v", err)
	}
	if _, err := f.svc.Get(context.Background(), "user_3", p.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}
}

func TestProjectService_Get_NotFoundBeforeForbidden(t *testing.T) {
	f := newProjectFixture()

	if _, err := f.svc.Get(context.Background(), "user_1", "missing"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_Update_OwnerOnly(t *testing.T) {
	f := newProjectFixture()
	p := f.seedProject(t, "user_1", "Launch")

	title := "Relaunch"
	updated, err := f.svc.Update(context.Background(), "user_1", p.ID, ports.UpdateProjectInput{Title: &title})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Relaunch" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}

	if _, err := f.svc.Update(context.Background(), "user_2", p.ID, ports.UpdateProjectInput{Title: &title}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProjectService_Update_EmptyTitleRejected(t *testing.T) {
	f := newProjectFixture()
	p := f.seedProject(t, "user_1", "Launch")

	empty := "  "
	if _, err := f.svc.Update(context.Background(), "user_1", p.ID, ports.UpdateProjectInput{Title: &empty}); !errors.Is(err, domain.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}

	// Prior title must be unchanged after the failed update.
	current, _ := f.svc.Get(context.Background(), "user_1", p.ID)
	if current.Title != "Launch" {
		t.Errorf("title changed after failed update: %q", current.Title)
	}
}

func TestProjectService_Delete_CascadesToTasks(t *testing.T) {
	f := newProjectFixture()
	p := f.seedProject(t, "user_1", "Launch")
	other := f.seedProject(t, "user_1", "Other")

	_, _ = f.tasks.Create(context.Background(), &domain.Task{Title: "a", ProjectID: p.ID, Status: domain.StatusToDo})
	_, _ = f.tasks.Create(context.Background(), &domain.Task{Title: "b", ProjectID: p.ID, Status: domain.StatusToDo})
	keep, _ := f.tasks.Create(context.Background(), &domain.Task{Title: "c", ProjectID: other.ID, Status: domain.StatusToDo})

	if err := f.svc.Delete(context.Background(), "user_1", p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := f.projects.FindByID(context.Background(), p.ID); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Error("project must be gone after delete")
	}
	if remaining, _ := f.tasks.ListByProject(context.Background(), p.ID); len(remaining) != 0 {
		t.Errorf("expected cascade to remove tasks, %d left", len(remaining))
	}
	if _, err := f.tasks.FindByID(context.Background(), keep.ID); err != nil {
		t.Error("tasks of other projects must survive the cascade")
	}
}

func TestProjectService_Delete_NonOwnerForbidden(t *testing.T) {
	f := newProjectFixture()
	p := f.seedProject(t, "user_1", "Launch")

	if err := f.svc.Delete(context.Background(), "user_2", p.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.projects.FindByID(context.Background(), p.ID); err != nil {
		t.Error("project must survive a forbidden delete")
	}
}

// ---------------------------------------------------------------------------
// Invitation rule
// ---------------------------------------------------------------------------

func TestProjectService_Invite_Success(t *testing.T) {
	f := newProjectFixture()
	owner := f.seedUser(t, "Alice", "alice@example.com")
	guest := f.seedUser(t, "Bob", "bob@example.com")
	p := f.seedProject(t, owner.ID, "Launch")

	invited, err := f.svc.Invite(context.Background(), owner.ID, p.ID, "bob@example.com")
	if err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if invited.ID != guest.ID {
		t.Fatalf("expected invited user %q, got %q", guest.ID, invited.ID)
	}

	// A repeat read shows exactly one new collaborator.
	current, _ := f.projects.FindByID(context.Background(), p.ID)
	if len(current.Collaborators) != 1 || current.Collaborators[0] != guest.ID {
		t.Fatalf("unexpected collaborator set: %v", current.Collaborators)
	}
	if !current.IsMember(guest.ID) {
		t.Error("invited user must be a member")
	}
	if current.IsOwner(guest.ID) {
		t.Error("invited user must not become owner")
	}
}

func TestProjectService_Invite_OwnerRejected(t *testing.T) {
	f := newProjectFixture()
	owner := f.seedUser(t, "Alice", "alice@example.com")
	p := f.seedProject(t, owner.ID, "Launch")

	if _, err := f.svc.Invite(context.Background(), owner.ID, p.ID, "alice@example.com"); !errors.Is(err, domain.ErrOwnerInvite) {
		t.Fatalf("expected ErrOwnerInvite, got %v", err)
	}

	current, _ := f.projects.FindByID(context.Background(), p.ID)
	if len(current.Collaborators) != 0 {
		t.Errorf("collaborator set must be unchanged, got %v", current.Collaborators)
	}
}

func TestProjectService_Invite_DuplicateRejected(t *testing.T) {
	f := newProjectFixture()
	owner := f.seedUser(t, "Alice", "alice@example.com")
	f.seedUser(t, "Bob", "bob@example.com")
	p := f.seedProject(t, owner.ID, "Launch")

	if _, err := f.svc.Invite(context.Background(), owner.ID, p.ID, "bob@example.com"); err != nil {
		t.Fatalf("first invite failed: %v", err)
	}

	if _, err := f.svc.Invite(context.Background(), owner.ID, p.ID, "bob@example.com"); !errors.Is(err, domain.ErrAlreadyCollaborator) {
		t.Fatalf("expected ErrAlreadyCollaborator, got %v", err)
	}

	// Idempotent failure: the set is unchanged after the rejected retry.
	current, _ := f.projects.FindByID(context.Background(), p.ID)
	if len(current.Collaborators) != 1 {
		t.Errorf("expected 1 collaborator after duplicate invite, got %d", len(current.Collaborators))
	}
}

func TestProjectService_Invite_UnknownEmail(t *testing.T) {
	f := newProjectFixture()
	owner := f.seedUser(t, "Alice", "alice@example.com")
	p := f.seedProject(t, owner.ID, "Launch")

	if _, err := f.svc.Invite(context.Background(), owner.ID, p.ID, "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProjectService_Invite_NonOwnerForbidden(t *testing.T) {
	f := newProjectFixture()
	owner := f.seedUser(t, "Alice", "alice@example.com")
	guest := f.seedUser(t, "Bob", "bob@example.com")
	f.seedUser(t, "Carol", "carol@example.com")
	p := f.seedProject(t, owner.ID, "Launch")

	if _, err := f.svc.Invite(context.Background(), guest.ID, p.ID, "carol@example.com"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Scenario from the access-control contract
// ---------------------------------------------------------------------------

func TestProjectScenario_InviteThenDeniedDelete(t *testing.T) {
	f := newProjectFixture()
	alice := f.seedUser(t, "Alice", "alice@example.com")
	bob := f.seedUser(t, "Bob", "bob@example.com")
	launch := f.seedProject(t, alice.ID, "Launch")

	before, _ := f.projects.FindByID(context.Background(), launch.ID)
	if before.IsOwner(bob.ID) || before.IsMember(bob.ID) {
		t.Fatal("bob must start as a stranger")
	}

	if _, err := f.svc.Invite(context.Background(), alice.ID, launch.ID, "bob@example.com"); err != nil {
		t.Fatalf("invite failed: %v", err)
	}

	after, _ := f.projects.FindByID(context.Background(), launch.ID)
	if !after.IsMember(bob.ID) {
		t.Error("bob must be a member after the invite")
	}
	if after.IsOwner(bob.ID) {
		t.Error("bob must not be the owner")
	}

	if _, err := f.svc.Invite(context.Background(), alice.ID, launch.ID, "alice@example.com"); !errors.Is(err, domain.ErrOwnerInvite) {
		t.Errorf("self-invite must fail with ErrOwnerInvite, got %v", err)
	}

	if err := f.svc.Delete(context.Background(), bob.ID, launch.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("collaborator delete must fail with ErrForbidden, got %v", err)
	}
}
