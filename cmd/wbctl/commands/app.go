package commands

import (
	"watchbill-admin/internal/seed"
	"watchbill-admin/internal/service"

	"github.com/fatih/color"
)

var (
	good = color.New(color.FgGreen)
	warn = color.New(color.FgYellow)
)

// Seeder loads roster files
type Seeder interface {
	LoadFile(path string) (*seed.Stats, error)
	LoadDir(dir string) (*seed.Stats, error)
}

// AppContext holds the dependencies shared by the commands
type AppContext struct {
	Sailors service.SailorServiceInterface
	Seeder  Seeder
}
