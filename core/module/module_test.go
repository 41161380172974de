package module

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"restable/core/logger"
	"restable/core/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModule struct {
	DefaultModule
	initErr  error
	migrated bool
}

func (m *fakeModule) Init() error { return m.initErr }

func (m *fakeModule) Migrate() error {
	m.migrated = true
	return nil
}

func (m *fakeModule) Routes(group *router.RouterGroup) {
	group.GET("/fake", func(c *router.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})
}

type fakeProvider map[string]Module

func (p fakeProvider) GetAppModules(deps Dependencies) map[string]Module  { return p }
func (p fakeProvider) GetCoreModules(deps Dependencies) map[string]Module { return p }

func TestAppOrchestratorInitializesModules(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	r := router.New()
	deps := Dependencies{Router: r.Group("/api"), Logger: logger.NewNop()}
	good := &fakeModule{}
	broken := &fakeModule{initErr: errors.New("boom")}

	orchestrator := NewAppOrchestrator(NewInitializer(deps.Logger), fakeProvider{"good": good, "broken": broken})
	initialized, err := orchestrator.InitializeAppModules(deps)
	require.NoError(t, err)

	require.Len(t, initialized, 1)
	assert.Same(t, good, initialized[0])
	assert.True(t, good.migrated)
	assert.False(t, broken.migrated)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/fake", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	_, ok := GetModule("good")
	assert.True(t, ok)
}

func TestCoreOrchestratorWithoutModules(t *testing.T) {
	orchestrator := NewCoreOrchestrator(NewInitializer(logger.NewNop()), fakeProvider{})

	initialized, err := orchestrator.InitializeCoreModules(Dependencies{Logger: logger.NewNop()})
	require.NoError(t, err)
	assert.Empty(t, initialized)
}

func TestRegisterModuleTwice(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	require.NoError(t, RegisterModule("posts", &fakeModule{}))
	assert.Error(t, RegisterModule("posts", &fakeModule{}))
}
