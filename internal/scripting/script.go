package scripting

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// ErrNoFunction is returned by Call when the script defines no global
// function with the requested name.
var ErrNoFunction = errors.New("scripting: function not defined")

// Args is one table argument: each entry becomes a field of a fresh Lua table.
type Args map[string]lua.LValue

// Script is one Lua file loaded into its own sandboxed VM.
//
// A Script is safe for concurrent Call; the VM itself is single-threaded, so
// calls are serialized.
type Script struct {
	mu        sync.Mutex
	L         *lua.LState
	path      string
	instLimit int
}

// LoadScript creates a sandboxed VM and executes the file at path in it, so
// the file's global functions become callable.
//
// Precondition: path must name a readable Lua file.
// Postcondition: Returns a ready Script or an error; on error no VM is leaked.
func LoadScript(path string, instLimit int) (*Script, error) {
	L := NewSandboxedState()
	err := withInstructionLimit(L, instLimit, func() error {
		return L.DoFile(path)
	})
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("scripting: loading %q: %w", path, err)
	}
	return &Script{L: L, path: path, instLimit: instLimit}, nil
}

// Path returns the file the script was loaded from.
func (s *Script) Path() string { return s.path }

// Call invokes the global function fn with one table per Args and returns
// its first nret results. Lua runtime errors and instruction-limit overruns
// are returned as errors; the VM stays usable for later calls.
//
// Precondition: nret >= 0.
// Postcondition: len(result) == nret on success.
func (s *Script) Call(fn string, nret int, args ...Args) ([]lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	L := s.L
	f := L.GetGlobal(fn)
	if f.Type() != lua.LTFunction {
		return nil, fmt.Errorf("%w: %q in %q", ErrNoFunction, fn, s.path)
	}

	params := make([]lua.LValue, 0, len(args))
	for _, a := range args {
		tbl := L.NewTable()
		for k, v := range a {
			tbl.RawSetString(k, v)
		}
		params = append(params, tbl)
	}

	top := L.GetTop()
	err := withInstructionLimit(L, s.instLimit, func() error {
		return L.CallByParam(lua.P{Fn: f, NRet: nret, Protect: true}, params...)
	})
	if err != nil {
		L.SetTop(top)
		return nil, fmt.Errorf("scripting: calling %q in %q: %w", fn, s.path, err)
	}

	out := make([]lua.LValue, nret)
	for i := 0; i < nret; i++ {
		out[i] = L.Get(top + 1 + i)
	}
	L.SetTop(top)
	return out, nil
}

// Close releases the VM.
func (s *Script) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.L.Close()
}
