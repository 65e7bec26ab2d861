package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/service"
	mock_service "github.com/tesis-cabal-cugno-moreyra/backend/internal/service/mocks"
)

func TestNotifyFinalized_FansOutPerResource(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mock_service.NewMockPushQueue(ctrl)
	broadcaster := mock_service.NewMockBroadcaster(ctrl)

	trigger := service.NewNotificationTrigger(queue, broadcaster, newTestLogger())

	incidentID := uuid.New()
	resourceIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	broadcaster.EXPECT().
		Publish(gomock.Any(), domain.IncidentEvent{Type: domain.EventIncidentFinalized, IncidentID: incidentID}).
		Return(nil)

	trigger.NotifyFinalized(context.Background(), incidentID, resourceIDs)
}

func TestNotifyCancelled_EnqueueFailureDoesNotStopFanout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mock_service.NewMockPushQueue(ctrl)
	broadcaster := mock_service.NewMockBroadcaster(ctrl)

	trigger := service.NewNotificationTrigger(queue, broadcaster, newTestLogger())

	incidentID := uuid.New()
	resourceIDs := []uuid.UUID{uuid.New(), uuid.New()}

	first := queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).After(first)
	broadcaster.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	trigger.NotifyCancelled(context.Background(), incidentID, resourceIDs)
}
