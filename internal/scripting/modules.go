package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// registerModules installs the engine.* Lua table into L:
//
//	engine.log(msg)    write msg to the structured log at Info level
//	engine.roll(expr)  roll a dice expression like "2d6+1", returns the total
//
// Rolls flow through the Manager's logged roller, so seeded battles stay
// deterministic even when scripts roll, and every scripted roll shows up in
// the debug audit trail.
func (m *Manager) registerModules(L *lua.LState) {
	engine := L.NewTable()

	L.SetField(engine, "log", L.NewFunction(func(L *lua.LState) int {
		m.logger.Info("script log", zap.String("message", L.CheckString(1)))
		return 0
	}))

	L.SetField(engine, "roll", L.NewFunction(func(L *lua.LState) int {
		expr := L.CheckString(1)
		res, err := m.roller.RollExpr(expr)
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		L.Push(lua.LNumber(res.Total()))
		return 1
	}))

	L.SetGlobal("engine", engine)
}
