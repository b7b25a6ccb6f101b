package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// OpenMemory opens a private in-memory sqlite database. Connections opened
// with the same name share one database, so callers pick a unique name
// (tests use t.Name()).
func OpenMemory(name string) (*gorm.DB, error) {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	return Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
}
