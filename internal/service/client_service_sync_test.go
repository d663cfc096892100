// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/mock"
	"github.com/MKhiriev/go-field-keeper/internal/serializer"
	"github.com/MKhiriev/go-field-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSyncSvc builds a clientSyncService backed by mocks.
func newTestSyncSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	opts ...SyncOption,
) (
	*clientSyncService,
	*mock.MockLocalStore,
	*mock.MockIdentityProvider,
	*mock.MockSinkAdapter,
) {
	t.Helper()
	mockStore := mock.NewMockLocalStore(ctrl)
	mockIdentity := mock.NewMockIdentityProvider(ctrl)
	mockSink := mock.NewMockSinkAdapter(ctrl)

	svc := NewClientSyncService(mockStore, mockIdentity, mockSink, serializer.New(), logger.Nop(), opts...).(*clientSyncService)

	return svc, mockStore, mockIdentity, mockSink
}

func noteCampaign(sinkID *string) models.Campaign {
	return models.Campaign{
		ID:            "c1",
		Name:          "Notes",
		Fields:        models.FieldDefinitions{{ID: "f1", Name: "Note", Type: models.FieldText}},
		SpreadsheetID: sinkID,
	}
}

func strPtr(s string) *string { return &s }

var testCredential = models.Credential{Token: "tok", ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}

// ── SyncCampaign ─────────────────────────────────────────────────────────────

func TestClientSyncService_SyncCampaign_FirstSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockIdentity, mockSink := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e1 := models.Entry{ID: "e1", CampaignID: "c1", Data: models.FieldValues{"f1": models.TextValue("hello")}, CreatedAt: created}

	gomock.InOrder(
		mockIdentity.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil),
		mockSink.EXPECT().SetCredential(testCredential),
		mockStore.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(nil), true, nil),
		mockSink.EXPECT().CreateSink(gomock.Any(), "Notes").Return("sink-1", nil),
		mockStore.EXPECT().SetSpreadsheetID(gomock.Any(), "c1", "sink-1").Return(nil),
		mockSink.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return(nil, nil),
		mockSink.EXPECT().WriteHeaderRow(gomock.Any(), "sink-1",
			[]string{"ID", "Created At", "Latitude", "Longitude", "Accuracy", "Note"}).Return(nil),
		mockStore.EXPECT().ListUnsyncedEntries(gomock.Any(), "c1").Return([]models.Entry{e1}, nil),
		mockSink.EXPECT().AppendRows(gomock.Any(), "sink-1",
			[][]string{{"e1", "2024-03-01T12:00:00.000Z", "", "", "", "hello"}}).Return(nil),
		mockStore.EXPECT().MarkSynced(gomock.Any(), []string{"e1"}).Return(int64(1), nil),
	)

	result, err := svc.SyncCampaign(ctx, "c1")

	require.NoError(t, err)
	assert.Equal(t, models.SyncResult{
		CampaignID:    "c1",
		SinkID:        "sink-1",
		SinkCreated:   true,
		HeaderWritten: true,
		AppendedIDs:   []string{"e1"},
	}, result)
}

func TestClientSyncService_SyncCampaign_ExistingSinkAndHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockIdentity, mockSink := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	// the user renamed a column in the sink; it must stay as it is
	manualHeader := []string{"ID", "Created At", "Lat", "Lng", "Acc", "My Note"}

	mockIdentity.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil)
	mockSink.EXPECT().SetCredential(testCredential)
	mockStore.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(strPtr("sink-1")), true, nil)
	mockSink.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return(manualHeader, nil)
	mockStore.EXPECT().ListUnsyncedEntries(gomock.Any(), "c1").Return([]models.Entry{{ID: "e1", CampaignID: "c1"}, {ID: "e2", CampaignID: "c1"}}, nil)
	mockSink.EXPECT().AppendRows(gomock.Any(), "sink-1", gomock.Len(2)).Return(nil)
	mockStore.EXPECT().MarkSynced(gomock.Any(), []string{"e1", "e2"}).Return(int64(2), nil)

	// CreateSink, SetSpreadsheetID and WriteHeaderRow are not expected: gomock
	// fails the test if they are called.
	result, err := svc.SyncCampaign(ctx, "c1")

	require.NoError(t, err)
	assert.False(t, result.SinkCreated)
	assert.False(t, result.HeaderWritten)
	assert.Equal(t, "sink-1", result.SinkID)
	assert.Equal(t, []string{"e1", "e2"}, result.AppendedIDs)
}

func TestClientSyncService_SyncCampaign_BlankHeaderIsRewritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockIdentity, mockSink := newTestSyncSvc(t, ctrl)

	mockIdentity.EXPECT().Authenticate(gomock.Any()).Return(models.Credential{}, nil)
	mockSink.EXPECT().SetCredential(gomock.Any())
	mockStore.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(strPtr("sink-1")), true, nil)
	mockSink.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return([]string{"", " "}, nil)
	mockSink.EXPECT().WriteHeaderRow(gomock.Any(), "sink-1", gomock.Len(6)).Return(nil)
	mockStore.EXPECT().ListUnsyncedEntries(gomock.Any(), "c1").Return(nil, nil)

	result, err := svc.SyncCampaign(context.Background(), "c1")

	require.NoError(t, err)
	assert.True(t, result.HeaderWritten)
}

func TestClientSyncService_SyncCampaign_NothingToAppend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockIdentity, mockSink := newTestSyncSvc(t, ctrl)

	mockIdentity.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil)
	mockSink.EXPECT().SetCredential(testCredential)
	mockStore.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(strPtr("sink-1")), true, nil)
	mockSink.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return([]string{"ID"}, nil)
	mockStore.EXPECT().ListUnsyncedEntries(gomock.Any(), "c1").Return([]models.Entry{}, nil)

	result, err := svc.SyncCampaign(context.Background(), "c1")

	require.NoError(t, err)
	assert.Empty(t, result.AppendedIDs)
}

func TestClientSyncService_SyncCampaign_Failures(t *testing.T) {
	storeErr := errors.New("disk I/O error")
	sinkErr := errors.New("sink unreachable")
	authErr := errors.New("user denied")

	tests := []struct {
		name      string
		setup     func(st *mock.MockLocalStore, id *mock.MockIdentityProvider, sk *mock.MockSinkAdapter)
		wantStage models.SyncStage
		wantKind  error
		wantCause error
	}{
		{
			name: "auth denied",
			setup: func(st *mock.MockLocalStore, id *mock.MockIdentityProvider, sk *mock.MockSinkAdapter) {
				id.EXPECT().Authenticate(gomock.Any()).Return(models.Credential{}, authErr)
			},
			wantStage: models.StageAuthenticating,
			wantKind:  models.ErrAuth,
			wantCause: authErr,
		},
		{
			name: "campaign lookup fails",
			setup: func(st *mock.MockLocalStore, id *mock.MockIdentityProvider, sk *mock.MockSinkAdapter) {
				id.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil)
				sk.EXPECT().SetCredential(testCredential)
				st.EXPECT().GetCampaign(gomock.Any(), "c1").Return(models.Campaign{}, false, storeErr)
			},
			wantStage: models.StageEnsuringSink,
			wantKind:  models.ErrStore,
			wantCause: storeErr,
		},
		{
			name: "campaign missing",
			setup: func(st *mock.MockLocalStore, id *mock.MockIdentityProvider, sk *mock.MockSinkAdapter) {
				id.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil)
				sk.EXPECT().SetCredential(testCredential)
				st.EXPECT().GetCampaign(gomock.Any(), "c1").Return(models.Campaign{}, false, nil)
			},
			wantStage: models.StageEnsuringSink,
			wantKind:  models.ErrStore,
			wantCause: ErrCampaignNotFound,
		},
		{
			name: "sink creation fails",
			setup: func(st *mock.MockLocalStore, id *mock.MockIdentityProvider, sk *mock.MockSinkAdapter) {
				id.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil)
				sk.EXPECT().SetCredential(testCredential)
				st.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(nil), true, nil)
				sk.EXPECT().CreateSink(gomock.Any(), "Notes").Return("", sinkErr)
			},
			wantStage: models.StageEnsuringSink,
			wantKind:  models.ErrSink,
			wantCause: sinkErr,
		},
		{
			name: "sink id not persisted",
			setup: func(st *mock.MockLocalStore, id *mock.MockIdentityProvider, sk *mock.MockSinkAdapter) {
				id.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil)
				sk.EXPECT().SetCredential(testCredential)
				st.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(nil), true, nil)
				sk.EXPECT().CreateSink(gomock.Any(), "Notes").Return("sink-1", nil)
				st.EXPECT().SetSpreadsheetID(gomock.Any(), "c1", "sink-1").Return(storeErr)
			},
			wantStage: models.StageEnsuringSink,
			wantKind:  models.ErrStore,
			wantCause: storeErr,
		},
		{
			name: "header read fails",
			setup: func(st *mock.MockLocalStore, id *mock.MockIdentityProvider, sk *mock.MockSinkAdapter) {
				id.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil)
				sk.EXPECT().SetCredential(testCredential)
				st.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(strPtr("sink-1")), true, nil)
				sk.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return(nil, sinkErr)
			},
			wantStage: models.StageEnsuringHeader,
			wantKind:  models.ErrSink,
			wantCause: sinkErr,
		},
		{
			name: "unsynced listing fails",
			setup: func(st *mock.MockLocalStore, id *mock.MockIdentityProvider, sk *mock.MockSinkAdapter) {
				id.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil)
				sk.EXPECT().SetCredential(testCredential)
				st.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(strPtr("sink-1")), true, nil)
				sk.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return([]string{"ID"}, nil)
				st.EXPECT().ListUnsyncedEntries(gomock.Any(), "c1").Return(nil, storeErr)
			},
			wantStage: models.StageAppending,
			wantKind:  models.ErrStore,
			wantCause: storeErr,
		},
		{
			name: "append fails and nothing is marked",
			setup: func(st *mock.MockLocalStore, id *mock.MockIdentityProvider, sk *mock.MockSinkAdapter) {
				id.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil)
				sk.EXPECT().SetCredential(testCredential)
				st.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(strPtr("sink-1")), true, nil)
				sk.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return([]string{"ID"}, nil)
				st.EXPECT().ListUnsyncedEntries(gomock.Any(), "c1").Return([]models.Entry{{ID: "e1"}}, nil)
				sk.EXPECT().AppendRows(gomock.Any(), "sink-1", gomock.Any()).Return(sinkErr)
			},
			wantStage: models.StageAppending,
			wantKind:  models.ErrSink,
			wantCause: sinkErr,
		},
		{
			name: "mark synced fails",
			setup: func(st *mock.MockLocalStore, id *mock.MockIdentityProvider, sk *mock.MockSinkAdapter) {
				id.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil)
				sk.EXPECT().SetCredential(testCredential)
				st.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(strPtr("sink-1")), true, nil)
				sk.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return([]string{"ID"}, nil)
				st.EXPECT().ListUnsyncedEntries(gomock.Any(), "c1").Return([]models.Entry{{ID: "e1"}}, nil)
				sk.EXPECT().AppendRows(gomock.Any(), "sink-1", gomock.Any()).Return(nil)
				st.EXPECT().MarkSynced(gomock.Any(), []string{"e1"}).Return(int64(0), storeErr)
			},
			wantStage: models.StageMarkingSynced,
			wantKind:  models.ErrStore,
			wantCause: storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockStore, mockIdentity, mockSink := newTestSyncSvc(t, ctrl)
			tt.setup(mockStore, mockIdentity, mockSink)

			_, err := svc.SyncCampaign(context.Background(), "c1")

			require.Error(t, err)
			var syncErr *SyncError
			require.ErrorAs(t, err, &syncErr)
			assert.Equal(t, "c1", syncErr.CampaignID)
			assert.Equal(t, tt.wantStage, syncErr.Stage)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.ErrorIs(t, err, tt.wantCause)

			for _, other := range []error{models.ErrAuth, models.ErrSink, models.ErrStore} {
				if other != tt.wantKind {
					assert.NotErrorIs(t, err, other)
				}
			}
		})
	}
}

func TestClientSyncService_SyncCampaign_SinkIDPersistedBeforeHeaderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockIdentity, mockSink := newTestSyncSvc(t, ctrl)
	headerErr := errors.New("quota exceeded")

	gomock.InOrder(
		mockIdentity.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil),
		mockSink.EXPECT().SetCredential(testCredential),
		mockStore.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(nil), true, nil),
		mockSink.EXPECT().CreateSink(gomock.Any(), "Notes").Return("sink-1", nil),
		mockStore.EXPECT().SetSpreadsheetID(gomock.Any(), "c1", "sink-1").Return(nil),
		mockSink.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return(nil, nil),
		mockSink.EXPECT().WriteHeaderRow(gomock.Any(), "sink-1", gomock.Any()).Return(headerErr),
	)

	result, err := svc.SyncCampaign(context.Background(), "c1")

	require.ErrorIs(t, err, models.ErrSink)
	require.ErrorIs(t, err, headerErr)
	assert.Equal(t, "sink-1", result.SinkID)
	assert.True(t, result.SinkCreated)

	// the retry reuses the persisted sink
	gomock.InOrder(
		mockIdentity.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil),
		mockSink.EXPECT().SetCredential(testCredential),
		mockStore.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(strPtr("sink-1")), true, nil),
		mockSink.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return(nil, nil),
		mockSink.EXPECT().WriteHeaderRow(gomock.Any(), "sink-1", gomock.Any()).Return(nil),
		mockStore.EXPECT().ListUnsyncedEntries(gomock.Any(), "c1").Return(nil, nil),
	)

	result, err = svc.SyncCampaign(context.Background(), "c1")

	require.NoError(t, err)
	assert.False(t, result.SinkCreated)
}

func TestClientSyncService_SyncCampaign_RejectsConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockIdentity, mockSink := newTestSyncSvc(t, ctrl)

	entered := make(chan struct{})
	release := make(chan struct{})

	mockIdentity.EXPECT().Authenticate(gomock.Any()).DoAndReturn(func(context.Context) (models.Credential, error) {
		close(entered)
		<-release
		return testCredential, nil
	})
	mockSink.EXPECT().SetCredential(testCredential)
	mockStore.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(strPtr("sink-1")), true, nil)
	mockSink.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return([]string{"ID"}, nil)
	mockStore.EXPECT().ListUnsyncedEntries(gomock.Any(), "c1").Return([]models.Entry{{ID: "e1"}}, nil)
	mockSink.EXPECT().AppendRows(gomock.Any(), "sink-1", gomock.Len(1)).Return(nil).Times(1)
	mockStore.EXPECT().MarkSynced(gomock.Any(), []string{"e1"}).Return(int64(1), nil).Times(1)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = svc.SyncCampaign(context.Background(), "c1")
	}()

	<-entered
	_, err := svc.SyncCampaign(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)

	// the guard is released once the run ends
	assert.True(t, svc.acquire("c1"))
	svc.release("c1")
}

func TestClientSyncService_SyncCampaign_OtherCampaignsAreNotBlocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestSyncSvc(t, ctrl)

	require.True(t, svc.acquire("c1"))
	defer svc.release("c1")

	assert.True(t, svc.acquire("c2"))
	assert.False(t, svc.acquire("c1"))
	svc.release("c2")
}

func TestClientSyncService_StageObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var stages []models.SyncStage
	observer := func(campaignID string, stage models.SyncStage) {
		assert.Equal(t, "c1", campaignID)
		stages = append(stages, stage)
	}

	t.Run("success", func(t *testing.T) {
		stages = nil
		svc, mockStore, mockIdentity, mockSink := newTestSyncSvc(t, ctrl, WithStageObserver(observer), WithStageObserver(nil))

		mockIdentity.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil)
		mockSink.EXPECT().SetCredential(testCredential)
		mockStore.EXPECT().GetCampaign(gomock.Any(), "c1").Return(noteCampaign(strPtr("sink-1")), true, nil)
		mockSink.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return([]string{"ID"}, nil)
		mockStore.EXPECT().ListUnsyncedEntries(gomock.Any(), "c1").Return([]models.Entry{{ID: "e1"}}, nil)
		mockSink.EXPECT().AppendRows(gomock.Any(), "sink-1", gomock.Any()).Return(nil)
		mockStore.EXPECT().MarkSynced(gomock.Any(), []string{"e1"}).Return(int64(1), nil)

		_, err := svc.SyncCampaign(context.Background(), "c1")
		require.NoError(t, err)

		assert.Equal(t, []models.SyncStage{
			models.StageAuthenticating,
			models.StageEnsuringSink,
			models.StageEnsuringHeader,
			models.StageAppending,
			models.StageMarkingSynced,
			models.StageIdle,
		}, stages)
	})

	t.Run("failure", func(t *testing.T) {
		stages = nil
		svc, _, mockIdentity, _ := newTestSyncSvc(t, ctrl, WithStageObserver(observer))

		mockIdentity.EXPECT().Authenticate(gomock.Any()).Return(models.Credential{}, errors.New("offline"))

		_, err := svc.SyncCampaign(context.Background(), "c1")
		require.Error(t, err)

		assert.Equal(t, []models.SyncStage{
			models.StageAuthenticating,
			models.StageFailed,
			models.StageIdle,
		}, stages)
	})
}

// ── SyncAll ──────────────────────────────────────────────────────────────────

func TestClientSyncService_SyncAll_ContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockIdentity, mockSink := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	broken := noteCampaign(strPtr("sink-broken"))
	broken.ID = "c0"
	healthy := noteCampaign(strPtr("sink-1"))
	sinkErr := errors.New("gone")

	mockStore.EXPECT().GetCampaigns(ctx).Return([]models.Campaign{broken, healthy}, nil)
	mockIdentity.EXPECT().Authenticate(gomock.Any()).Return(testCredential, nil).Times(2)
	mockSink.EXPECT().SetCredential(testCredential).Times(2)

	mockStore.EXPECT().GetCampaign(gomock.Any(), "c0").Return(broken, true, nil)
	mockSink.EXPECT().ReadHeaderRow(gomock.Any(), "sink-broken").Return(nil, sinkErr)

	mockStore.EXPECT().GetCampaign(gomock.Any(), "c1").Return(healthy, true, nil)
	mockSink.EXPECT().ReadHeaderRow(gomock.Any(), "sink-1").Return([]string{"ID"}, nil)
	mockStore.EXPECT().ListUnsyncedEntries(gomock.Any(), "c1").Return(nil, nil)

	results, err := svc.SyncAll(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, sinkErr)
	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, "c0", syncErr.CampaignID)

	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].CampaignID)
}

func TestClientSyncService_SyncAll_ListFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, _, _ := newTestSyncSvc(t, ctrl)
	listErr := errors.New("locked")

	mockStore.EXPECT().GetCampaigns(gomock.Any()).Return(nil, listErr)

	results, err := svc.SyncAll(context.Background())

	assert.Nil(t, results)
	assert.ErrorIs(t, err, listErr)
}

func TestClientSyncService_SyncAll_StopsOnCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, _, _ := newTestSyncSvc(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockStore.EXPECT().GetCampaigns(ctx).Return([]models.Campaign{noteCampaign(nil)}, nil)

	results, err := svc.SyncAll(ctx)

	assert.Empty(t, results)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSyncError_Message(t *testing.T) {
	err := &SyncError{CampaignID: "c1", Stage: models.StageAppending, Kind: models.ErrSink, Err: errors.New("boom")}

	assert.Equal(t, "sync of campaign c1 failed while appending: boom", err.Error())
	assert.ErrorIs(t, err, models.ErrSink)
}
