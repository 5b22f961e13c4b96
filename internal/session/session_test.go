package session

import (
	"context"
	"errors"
	"testing"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"
	mock_interfaces "m2_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestManager_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("existing admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		users.EXPECT().GetByID(ctx, "u1").Return(entities.User{ID: "u1", Email: "m@m2.studio", DisplayName: "Mario", Role: entities.RoleAdmin}, nil)

		s, err := NewManager(users).SignIn(ctx, Identity{UID: "u1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.IsAdmin() || s.DisplayName != "Mario" || s.Email != "m@m2.studio" {
			t.Fatalf("unexpected session %+v", s)
		}
		if p := s.Principal(); p.ID != "u1" || !p.IsAdmin() {
			t.Fatalf("unexpected principal %+v", p)
		}
	})

	t.Run("first sign-in registers a client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		users.EXPECT().GetByID(ctx, "u2").Return(entities.User{}, nil)
		users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
			if u.Role != entities.RoleClient || u.DisplayName != "ana" || u.CreatedAt.IsZero() {
				t.Fatalf("unexpected user %+v", u)
			}
			return u, nil
		})

		s, err := NewManager(users).SignIn(ctx, Identity{UID: "u2", Email: "ana@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.IsAdmin() || s.DisplayName != "ana" {
			t.Fatalf("unexpected session %+v", s)
		}
	})

	t.Run("concurrent registration reloads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		gomock.InOrder(
			users.EXPECT().GetByID(ctx, "u3").Return(entities.User{}, nil),
			users.EXPECT().Create(ctx, gomock.Any()).Return(entities.User{}, interfaces.ErrConditionFailed),
			users.EXPECT().GetByID(ctx, "u3").Return(entities.User{ID: "u3", Role: entities.RoleClient}, nil),
		)

		if _, err := NewManager(users).SignIn(ctx, Identity{UID: "u3", DisplayName: "Bia"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing uid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		_, err := NewManager(mock_interfaces.NewMockIUserRepository(ctrl)).SignIn(ctx, Identity{})
		if !errors.Is(err, ErrNoIdentity) {
			t.Fatalf("expected ErrNoIdentity, got %v", err)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		boom := errors.New("dynamo down")
		users.EXPECT().GetByID(ctx, "u4").Return(entities.User{}, boom)

		if _, err := NewManager(users).SignIn(ctx, Identity{UID: "u4"}); !errors.Is(err, boom) {
			t.Fatalf("expected wrapped error, got %v", err)
		}
	})
}

func TestSession_Profile(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	users.EXPECT().GetByID(ctx, "u1").Return(entities.User{ID: "u1", Email: "ana@example.com", DisplayName: "Ana Souza", Company: "Ana Films"}, nil)

	s, err := NewManager(users).SignIn(ctx, Identity{UID: "u1", DisplayName: "ana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.DisplayName != "Ana Souza" {
		t.Fatalf("stored name should win over the token name, got %q", s.DisplayName)
	}
	u, err := s.Profile()
	if err != nil || u.Company != "Ana Films" {
		t.Fatalf("expected cached profile, got %+v %v", u, err)
	}

	if err := s.SetProfile(entities.User{ID: "u1", DisplayName: "Ana S.", Company: "AS"}); err != nil {
		t.Fatalf("SetProfile: %v", err)
	}
	if u, _ := s.Profile(); u.Company != "AS" {
		t.Fatalf("expected updated profile, got %+v", u)
	}
}

func TestSession_ProfileWithoutSignIn(t *testing.T) {
	s := &Session{UID: "u1", Email: "ana@example.com", DisplayName: "Ana", Role: entities.RoleClient}
	u, err := s.Profile()
	if err != nil || u.ID != "u1" || u.DisplayName != "Ana" {
		t.Fatalf("unexpected profile %+v %v", u, err)
	}
}

func TestManager_SignOut(t *testing.T) {
	s := &Session{UID: "u1"}
	if err := s.SetProfile(entities.User{ID: "u1", Phone: "+5511999"}); err != nil {
		t.Fatalf("SetProfile: %v", err)
	}

	m := &Manager{}
	m.SignOut(s)
	m.SignOut(s)
	m.SignOut(nil)

	if _, err := s.Profile(); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	if err := s.SetProfile(entities.User{ID: "u1"}); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}
