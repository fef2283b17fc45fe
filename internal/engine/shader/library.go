package shader

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shadowball/internal/engine/shader/shaders"
	"github.com/Faultbox/shadowball/internal/logger"
)

// ProgramID names one of the scene's programs.
type ProgramID int

// Programs, in load order.
const (
	Shadow ProgramID = iota
	Simple
	Skybox
	Plane
	Ball
	Composite

	ProgramCount
)

var programNames = [ProgramCount]string{
	Shadow:    "shadow",
	Simple:    "simple",
	Skybox:    "skybox",
	Plane:     "plane",
	Ball:      "ball",
	Composite: "composite",
}

func (id ProgramID) String() string {
	if id < 0 || id >= ProgramCount {
		return fmt.Sprintf("ProgramID(%d)", int(id))
	}
	return programNames[id]
}

// SourceFS returns the directory shader sources are read from: dir when
// set, the embedded sources otherwise.
func SourceFS(dir string) fs.FS {
	if dir == "" {
		return shaders.FS
	}
	return os.DirFS(dir)
}

// ReadSources returns the vertex and fragment source for a program.
func ReadSources(fsys fs.FS, id ProgramID) (vertex, fragment string, err error) {
	name := id.String()
	vert, err := fs.ReadFile(fsys, name+".vert")
	if err != nil {
		return "", "", fmt.Errorf("reading %s vertex shader: %w", name, err)
	}
	frag, err := fs.ReadFile(fsys, name+".frag")
	if err != nil {
		return "", "", fmt.Errorf("reading %s fragment shader: %w", name, err)
	}
	return string(vert), string(frag), nil
}

// Library holds one GL program per ProgramID. A program that failed to
// load is 0, which draws nothing.
type Library struct {
	programs [ProgramCount]uint32
}

// Load compiles every program from fsys. Failures are logged and leave the
// program at 0.
func Load(fsys fs.FS) *Library {
	log := logger.Named("shader")
	lib := &Library{}

	for id := ProgramID(0); id < ProgramCount; id++ {
		vert, frag, err := ReadSources(fsys, id)
		if err == nil {
			lib.programs[id], err = CompileProgram(id.String(), vert, frag)
		}
		if err != nil {
			log.Error("program unavailable", zap.Stringer("program", id), zap.Error(err))
			continue
		}
		log.Debug("program loaded", zap.Stringer("program", id), zap.Uint32("handle", lib.programs[id]))
	}
	return lib
}

// Program returns the GL handle for id.
func (l *Library) Program(id ProgramID) uint32 {
	return l.programs[id]
}

// Destroy deletes every program.
func (l *Library) Destroy() {
	for i, p := range l.programs {
		if p != 0 {
			gl.DeleteProgram(p)
			l.programs[i] = 0
		}
	}
}
