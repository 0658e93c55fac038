package rustedbrain

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	sqlite "github.com/glebarez/sqlite"
	gorm "gorm.io/gorm"
)

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

func (pc *PersistenceConfig) DSN() string {
	params := make([]string, 0, len(pc.SQLitePragmas)+len(pc.SQLiteOptions))
	for _, prag := range pc.SQLitePragmas {
		params = append(params, fmt.Sprintf("_pragma=%s", prag))
	}
	params = append(params, pc.SQLiteOptions...)

	dsn := filepath.Join(pc.Path, pc.Name)
	if len(params) > 0 {
		dsn = dsn + "?" + strings.Join(params, "&")
	}
	return dsn
}

type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	db, err := gorm.Open(sqlite.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{PrepareStmt: true})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Persistence) initialize() error {
	if err := p.DB.AutoMigrate(
		&RunRecord{},
	); err != nil {
		return err
	}

	return nil
}

func (p *Persistence) Shutdown() {
	if sqldb, err := p.DB.DB(); err != nil {
		log.Fatalf("Failed to retrieve raw DB: %v", err)
	} else {
		sqldb.Close()
	}
}

func (p *Persistence) Create(record *RunRecord) (uint, error) {
	if record == nil {
		return 0, fmt.Errorf("RunRecord cannot be nil")
	}

	if result := p.DB.Create(record); result.Error != nil {
		return 0, fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}

	return record.ID, nil
}

func (p *Persistence) LoadByFingerprint(fingerprint string) ([]*RunRecord, error) {
	var records []*RunRecord
	result := p.DB.Where("fingerprint = ?", fingerprint).Order("id").Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("Failed to load runs for fingerprint [%s]: %w", fingerprint, result.Error)
	}
	return records, nil
}

func (p *Persistence) LoadRecent(count int) ([]*RunRecord, error) {
	var records []*RunRecord
	result := p.DB.Order("id desc").Limit(count).Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("Failed to load recent runs: %w", result.Error)
	}
	return records, nil
}
