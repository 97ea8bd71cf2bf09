package desktop

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/desktop/mocks"
)

func newTestInhibitor(t *testing.T) (*ScreenSaverInhibitor, *mocks.MockDBusClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	conn := mocks.NewMockDBusClient(ctrl)

	inh := NewScreenSaverInhibitor(zap.NewNop())
	inh.connect = func() (DBusClient, error) { return conn, nil }
	return inh, conn
}

func TestInhibitAcquiresCookie(t *testing.T) {
	inh, conn := newTestInhibitor(t)

	conn.EXPECT().
		Call(_screenSaverDest, _screenSaverPath, _inhibitMethod,
			[]any{_applicationName, "Displaying artwork"}, gomock.Any()).
		DoAndReturn(func(dest, path, method string, args []any, ret any) error {
			*(ret.(*uint32)) = 42
			return nil
		})

	if err := inh.Inhibit(context.Background(), "Displaying artwork"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A second call while active does not touch the bus
	if err := inh.Inhibit(context.Background(), "Displaying artwork"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !inh.active || inh.cookie != 42 {
		t.Errorf("expected active inhibition with cookie 42, got active=%v cookie=%d", inh.active, inh.cookie)
	}
}

func TestUninhibitReleasesCookie(t *testing.T) {
	inh, conn := newTestInhibitor(t)

	conn.EXPECT().
		Call(_screenSaverDest, _screenSaverPath, _inhibitMethod, gomock.Any(), gomock.Any()).
		DoAndReturn(func(dest, path, method string, args []any, ret any) error {
			*(ret.(*uint32)) = 7
			return nil
		})
	conn.EXPECT().
		Call(_screenSaverDest, _screenSaverPath, _uninhibitMethod, []any{uint32(7)}, nil).
		Return(nil)

	ctx := context.Background()
	if err := inh.Inhibit(ctx, "Displaying artwork"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := inh.Uninhibit(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inh.active {
		t.Error("expected inhibition to be released")
	}

	// Releasing twice is a no-op
	if err := inh.Uninhibit(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInhibitWithoutSessionBus(t *testing.T) {
	inh := NewScreenSaverInhibitor(zap.NewNop())
	inh.connect = func() (DBusClient, error) { return nil, errors.New("no session bus") }

	if err := inh.Inhibit(context.Background(), "Displaying artwork"); err != nil {
		t.Fatalf("expected a silent no-op without a bus, got: %v", err)
	}
	if inh.active {
		t.Error("expected no active inhibition without a bus")
	}
}

func TestInhibitCallFailure(t *testing.T) {
	inh, conn := newTestInhibitor(t)

	conn.EXPECT().
		Call(_screenSaverDest, _screenSaverPath, _inhibitMethod, gomock.Any(), gomock.Any()).
		Return(errors.New("access denied"))

	err := inh.Inhibit(context.Background(), "Displaying artwork")
	if err == nil {
		t.Fatal("expected an error from the failed call, got nil")
	}
	if !strings.Contains(err.Error(), "failed to inhibit screensaver") {
		t.Errorf("unexpected error message: '%s'", err.Error())
	}
	if inh.active {
		t.Error("expected no active inhibition after a failed call")
	}
}

func TestCloseReleasesInhibition(t *testing.T) {
	inh, conn := newTestInhibitor(t)

	conn.EXPECT().
		Call(_screenSaverDest, _screenSaverPath, _inhibitMethod, gomock.Any(), gomock.Any()).
		DoAndReturn(func(dest, path, method string, args []any, ret any) error {
			*(ret.(*uint32)) = 9
			return nil
		})
	conn.EXPECT().
		Call(_screenSaverDest, _screenSaverPath, _uninhibitMethod, []any{uint32(9)}, nil).
		Return(nil)
	conn.EXPECT().Close().Return(nil)

	if err := inh.Inhibit(context.Background(), "Displaying artwork"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := inh.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
