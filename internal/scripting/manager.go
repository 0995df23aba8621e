package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/hollowmere/emberfall/internal/game/dice"
)

// Manager owns a single sandboxed LState holding every loaded effect hook
// script and dispatches status effect lifecycle events into it. It
// implements effect.Hooks.
//
// The mutex serializes all Lua execution; an LState is single-threaded.
type Manager struct {
	mu     sync.Mutex
	state  *lua.LState
	cancel func()
	roller *dice.Roller
	logger *zap.Logger
}

// NewManager creates a Manager with no scripts loaded. Hook dispatch on an
// empty Manager is a no-op.
//
// Precondition: src must be non-nil, or NewManager panics. A nil logger is
// replaced with a no-op logger.
func NewManager(src dice.Source, logger *zap.Logger) *Manager {
	if src == nil {
		panic("scripting: NewManager requires a dice source")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{roller: dice.NewLoggedRoller(src, logger), logger: logger}
}

// LoadDirectory creates a sandboxed VM, registers the engine.* module, then
// executes every *.lua file in scriptDir in lexicographic order. A repeat
// call replaces the previous VM.
//
// Precondition: scriptDir must be a readable directory.
func (m *Manager) LoadDirectory(scriptDir string, instLimit int) error {
	L, cancel := NewSandboxedState(instLimit)
	m.registerModules(L)

	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		cancel()
		L.Close()
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	for _, path := range luaFiles {
		if err := L.DoFile(path); err != nil {
			cancel()
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	m.mu.Lock()
	if m.state != nil {
		m.cancel()
		m.state.Close()
	}
	m.state = L
	m.cancel = cancel
	m.mu.Unlock()

	m.logger.Info("effect hook scripts loaded",
		zap.String("dir", scriptDir),
		zap.Int("files", len(luaFiles)))
	return nil
}

// Close tears down the VM. Safe to call on an empty Manager.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != nil {
		m.cancel()
		m.state.Close()
		m.state = nil
		m.cancel = nil
	}
}

// OnApply implements effect.Hooks.
func (m *Manager) OnApply(effectID, hook string) { m.call(hook, effectID) }

// OnTick implements effect.Hooks.
func (m *Manager) OnTick(effectID, hook string) { m.call(hook, effectID) }

// OnRemove implements effect.Hooks.
func (m *Manager) OnRemove(effectID, hook string) { m.call(hook, effectID) }

// call invokes the named Lua global function with the effect id. Missing
// VMs and undefined hooks are silent no-ops. Lua runtime errors are logged
// at Warn level and never propagated; a broken script must not break the
// battle.
func (m *Manager) call(hook, effectID string) {
	if hook == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return
	}

	fn := m.state.GetGlobal(hook)
	if fn == lua.LNil {
		m.logger.Debug("effect hook not defined",
			zap.String("hook", hook),
			zap.String("effect", effectID))
		return
	}

	if err := m.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LString(effectID)); err != nil {
		m.logger.Warn("effect hook failed",
			zap.String("hook", hook),
			zap.String("effect", effectID),
			zap.Error(err))
	}
}
