package tui

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/domain/mocks"
)

func newTestHost(t *testing.T) (*Host, *mocks.MockInhibitor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inh := mocks.NewMockInhibitor(ctrl)
	return NewHost(zap.NewNop(), inh), inh
}

func TestRevealOverlaysInhibitsScreensaver(t *testing.T) {
	host, inh := newTestHost(t)

	inh.EXPECT().Inhibit(gomock.Any(), _inhibitReason).Return(nil).Times(1)

	// no program attached yet: the reveal message is dropped but the
	// inhibition still happens
	host.RevealOverlays()
}

func TestDismissOverlaysReleasesScreensaver(t *testing.T) {
	host, inh := newTestHost(t)

	inh.EXPECT().Uninhibit(gomock.Any()).Return(nil).Times(1)

	host.DismissOverlays()
}

func TestResummonOnlyInhibits(t *testing.T) {
	host, inh := newTestHost(t)

	inh.EXPECT().Inhibit(gomock.Any(), _inhibitReason).Return(nil).Times(1)

	host.Resummon()
}

func TestHostSurvivesInhibitorErrors(t *testing.T) {
	host, inh := newTestHost(t)

	inh.EXPECT().Inhibit(gomock.Any(), gomock.Any()).Return(errors.New("no session bus"))
	inh.EXPECT().Uninhibit(gomock.Any()).Return(errors.New("no session bus"))

	host.RevealOverlays()
	host.DismissOverlays()
	host.Toggle()
}
