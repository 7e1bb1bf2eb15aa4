package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqs/internal/app"
	"go.trai.ch/reqs/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestApp_Setup_FirstRun(t *testing.T) {
	a, m := newTestApp(t)
	cfg := testConfig()

	gomock.InOrder(
		m.loader.EXPECT().Load(".").Return(cfg, nil),
		m.reader.EXPECT().Read(cfg.Manifest, domain.NewlineSpace).
			Return([]domain.Requirement{"pandas ", "numpy==1.26.4 "}, nil),
		m.finder.EXPECT().FindPackages(cfg.Discovery).Return([]string{"src"}, nil),
		m.hasher.EXPECT().ComputeFileDigest(cfg.Manifest).Return("00000000deadbeef", nil),
		m.store.EXPECT().Get("/work", "Test_repo").Return(nil, nil),
		m.store.EXPECT().Put("/work", gomock.Any()).DoAndReturn(func(_ string, rec domain.BuildRecord) error {
			assert.Equal(t, "Test_repo", rec.Project)
			assert.Equal(t, "00000000deadbeef", rec.ManifestDigest)
			assert.False(t, rec.Timestamp.IsZero())
			return nil
		}),
		m.logger.EXPECT().Info("Test_repo 0.0.1: 1 package(s), 2 requirement(s)"),
	)

	res, err := a.Setup(context.Background(), app.SetupOptions{})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, []domain.Requirement{"pandas ", "numpy==1.26.4 "}, res.Distribution.InstallRequires)
	assert.Equal(t, []string{"src"}, res.Distribution.Packages)
	assert.Equal(t, []string{"pkg:pypi/pandas", "pkg:pypi/numpy@1.26.4"}, res.Distribution.PackageURLs)
}

func TestApp_Setup_Unchanged(t *testing.T) {
	a, m := newTestApp(t)
	cfg := testConfig()

	m.loader.EXPECT().Load(".").Return(cfg, nil)
	m.reader.EXPECT().Read(cfg.Manifest, domain.NewlineSpace).Return([]domain.Requirement{"pandas "}, nil)
	m.finder.EXPECT().FindPackages(cfg.Discovery).Return([]string{"src"}, nil)
	m.hasher.EXPECT().ComputeFileDigest(cfg.Manifest).Return("abc", nil)
	m.store.EXPECT().Get("/work", "Test_repo").Return(&domain.BuildRecord{ManifestDigest: "abc"}, nil)
	m.store.EXPECT().Put("/work", gomock.Any()).Return(nil)
	m.logger.EXPECT().Info("requirements unchanged since last setup")
	m.logger.EXPECT().Info(gomock.Any())

	res, err := a.Setup(context.Background(), app.SetupOptions{})
	require.NoError(t, err)
	assert.False(t, res.Changed)
}

func TestApp_Setup_NoPackages(t *testing.T) {
	a, m := newTestApp(t)
	cfg := testConfig()

	m.loader.EXPECT().Load(".").Return(cfg, nil)
	m.reader.EXPECT().Read(cfg.Manifest, domain.NewlineSpace).Return([]domain.Requirement{}, nil)
	m.finder.EXPECT().FindPackages(cfg.Discovery).Return(nil, nil)
	m.logger.EXPECT().Warn("no packages found below /work")
	m.hasher.EXPECT().ComputeFileDigest(cfg.Manifest).Return("abc", nil)
	m.store.EXPECT().Get("/work", "Test_repo").Return(nil, nil)
	m.store.EXPECT().Put("/work", gomock.Any()).Return(nil)
	m.logger.EXPECT().Info(gomock.Any())

	res, err := a.Setup(context.Background(), app.SetupOptions{})
	require.NoError(t, err)
	assert.NotNil(t, res.Distribution.Packages)
	assert.Empty(t, res.Distribution.Packages)
	assert.Empty(t, res.Distribution.PackageURLs)
}

func TestApp_Setup_InvalidProject(t *testing.T) {
	a, m := newTestApp(t)
	cfg := testConfig()
	cfg.Project.Version = "latest"

	m.loader.EXPECT().Load(".").Return(cfg, nil)

	_, err := a.Setup(context.Background(), app.SetupOptions{})
	require.ErrorContains(t, err, domain.ErrInvalidProjectVersion.Error())
}

func TestApp_Setup_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name  string
		setup func(m *testMocks, cfg *domain.ProjectConfig)
	}{
		{
			name: "config",
			setup: func(m *testMocks, _ *domain.ProjectConfig) {
				m.loader.EXPECT().Load(".").Return(nil, boom)
			},
		},
		{
			name: "reader",
			setup: func(m *testMocks, cfg *domain.ProjectConfig) {
				m.loader.EXPECT().Load(".").Return(cfg, nil)
				m.reader.EXPECT().Read(gomock.Any(), gomock.Any()).Return(nil, boom)
			},
		},
		{
			name: "finder",
			setup: func(m *testMocks, cfg *domain.ProjectConfig) {
				m.loader.EXPECT().Load(".").Return(cfg, nil)
				m.reader.EXPECT().Read(gomock.Any(), gomock.Any()).Return([]domain.Requirement{}, nil)
				m.finder.EXPECT().FindPackages(gomock.Any()).Return(nil, boom)
			},
		},
		{
			name: "hasher",
			setup: func(m *testMocks, cfg *domain.ProjectConfig) {
				m.loader.EXPECT().Load(".").Return(cfg, nil)
				m.reader.EXPECT().Read(gomock.Any(), gomock.Any()).Return([]domain.Requirement{}, nil)
				m.finder.EXPECT().FindPackages(gomock.Any()).Return([]string{"src"}, nil)
				m.hasher.EXPECT().ComputeFileDigest(gomock.Any()).Return("", boom)
			},
		},
		{
			name: "store get",
			setup: func(m *testMocks, cfg *domain.ProjectConfig) {
				m.loader.EXPECT().Load(".").Return(cfg, nil)
				m.reader.EXPECT().Read(gomock.Any(), gomock.Any()).Return([]domain.Requirement{}, nil)
				m.finder.EXPECT().FindPackages(gomock.Any()).Return([]string{"src"}, nil)
				m.hasher.EXPECT().ComputeFileDigest(gomock.Any()).Return("abc", nil)
				m.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, boom)
			},
		},
		{
			name: "store put",
			setup: func(m *testMocks, cfg *domain.ProjectConfig) {
				m.loader.EXPECT().Load(".").Return(cfg, nil)
				m.reader.EXPECT().Read(gomock.Any(), gomock.Any()).Return([]domain.Requirement{}, nil)
				m.finder.EXPECT().FindPackages(gomock.Any()).Return([]string{"src"}, nil)
				m.hasher.EXPECT().ComputeFileDigest(gomock.Any()).Return("abc", nil)
				m.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(boom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, m := newTestApp(t)
			tt.setup(m, testConfig())

			res, err := a.Setup(context.Background(), app.SetupOptions{})
			require.ErrorIs(t, err, boom)
			assert.Nil(t, res)
		})
	}
}

func TestNewDistribution(t *testing.T) {
	p := domain.Project{Name: "demo", Version: "1.0.0", Author: "ola"}
	reqs := []domain.Requirement{"Flask_Login>=0.6 ", " ", "requests[socks]==2.31.0 "}

	dist := app.NewDistribution(p, nil, reqs)

	assert.Equal(t, "demo", dist.Name)
	assert.Equal(t, []string{}, dist.Packages)
	assert.Equal(t, reqs, dist.InstallRequires)
	assert.Equal(t, []string{"pkg:pypi/flask-login", "pkg:pypi/requests@2.31.0"}, dist.PackageURLs)
}

func TestNewDistribution_SkipsDirectives(t *testing.T) {
	p := domain.Project{Name: "demo", Version: "1.0.0"}
	reqs := []domain.Requirement{
		"# pinned deps ",
		"-r base.txt ",
		"--index-url https://x ",
		"https://example.com/pkg.whl ",
		"pandas ",
	}

	dist := app.NewDistribution(p, nil, reqs)

	assert.Equal(t, reqs, dist.InstallRequires)
	assert.Equal(t, []string{"pkg:pypi/pandas"}, dist.PackageURLs)
}
