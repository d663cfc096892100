// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-field-keeper/internal/config"
	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/mock"
	"github.com/MKhiriev/go-field-keeper/internal/service"
	"github.com/MKhiriev/go-field-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubSyncService returns canned results from SyncAll.
type stubSyncService struct {
	results []models.SyncResult
	err     error
	calls   int
}

func (s *stubSyncService) SyncCampaign(context.Context, string) (models.SyncResult, error) {
	return models.SyncResult{}, nil
}

func (s *stubSyncService) SyncAll(context.Context) ([]models.SyncResult, error) {
	s.calls++
	return s.results, s.err
}

// stubSyncJob records Start and Stop.
type stubSyncJob struct {
	started, stopped chan struct{}
}

func newStubSyncJob() *stubSyncJob {
	return &stubSyncJob{started: make(chan struct{}, 1), stopped: make(chan struct{}, 1)}
}

func (j *stubSyncJob) Start(context.Context, time.Duration) { j.started <- struct{}{} }
func (j *stubSyncJob) Stop()                                { j.stopped <- struct{}{} }

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(nil, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)

	_, err = NewApp(&service.ClientServices{}, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)
}

func TestApp_Run_SinglePass(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	syncSvc := &stubSyncService{results: []models.SyncResult{
		{CampaignID: "c1", SinkID: "s1", SinkCreated: true, HeaderWritten: true, AppendedIDs: []string{"e1", "e2"}},
	}}

	app, err := NewApp(&service.ClientServices{SyncService: syncSvc, SyncJob: newStubSyncJob()}, config.ClientWorkers{}, log)
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, 1, syncSvc.calls)
	assert.Contains(t, buf.String(), `"campaign_id":"c1"`)
	assert.Contains(t, buf.String(), `"appended":2`)
}

func TestApp_Run_SinglePassFailure(t *testing.T) {
	syncErr := errors.New("sink down")
	syncSvc := &stubSyncService{err: syncErr}

	app, err := NewApp(&service.ClientServices{SyncService: syncSvc}, config.ClientWorkers{}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.Run(context.Background()), syncErr)
}

func TestApp_Run_KeepsWorkerUntilCancelled(t *testing.T) {
	syncSvc := &stubSyncService{err: errors.New("offline")}
	job := newStubSyncJob()

	app, err := NewApp(&service.ClientServices{SyncService: syncSvc, SyncJob: job},
		config.ClientWorkers{SyncInterval: time.Minute}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	select {
	case <-job.started:
	case <-time.After(time.Second):
		t.Fatal("sync job was not started")
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err, "a failed first pass is retried by the worker")
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Len(t, job.stopped, 1)
}

func TestStageLogger_FeedsSyncService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)}

	localStore := mock.NewMockLocalStore(ctrl)
	identity := mock.NewMockIdentityProvider(ctrl)
	sink := mock.NewMockSinkAdapter(ctrl)

	identity.EXPECT().Authenticate(gomock.Any()).Return(models.Credential{}, errors.New("no network"))

	svc := service.NewClientSyncService(localStore, identity, sink, nil, logger.Nop(),
		service.WithStageObserver(StageLogger(log)))

	_, err := svc.SyncCampaign(context.Background(), "c1")
	require.Error(t, err)

	assert.Contains(t, buf.String(), `"stage":"authenticating"`)
	assert.Contains(t, buf.String(), `"stage":"failed"`)
	assert.Contains(t, buf.String(), `"stage":"idle"`)
}
