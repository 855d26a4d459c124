package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CookieJarRecord represents a jar's cookie line as a row in the database
type CookieJarRecord struct {
	JarID     string `gorm:"primaryKey"`
	Line      string
	UpdatedAt time.Time
}

// DatabaseStore keeps a jar's cookie line in Postgres, one row per jar.
type DatabaseStore struct {
	db    *gorm.DB
	jarID string
}

// NewDatabaseStore connects to Postgres and binds to the jar with the
// given ID. An empty jarID starts a fresh jar under a generated ID.
func NewDatabaseStore(dsn, jarID string) (*DatabaseStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-create table if needed
	if err := db.AutoMigrate(&CookieJarRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if jarID == "" {
		jarID = uuid.NewString()
	}

	return &DatabaseStore{db: db, jarID: jarID}, nil
}

func (ds *DatabaseStore) line() (string, error) {
	var rec CookieJarRecord
	result := ds.db.First(&rec, "jar_id = ?", ds.jarID)
	if result.Error == gorm.ErrRecordNotFound {
		return "", nil
	}
	if result.Error != nil {
		return "", result.Error
	}
	return rec.Line, nil
}

// Read fetches the jar's cookie line and splits it into entries.
func (ds *DatabaseStore) Read() ([]string, error) {
	line, err := ds.line()
	if err != nil {
		return nil, err
	}
	return splitLine(line), nil
}

// Write merges the entry into the jar's cookie line and upserts the row.
func (ds *DatabaseStore) Write(entry string, meta Metadata) (string, error) {
	line, err := ds.line()
	if err != nil {
		return "", err
	}

	rec := CookieJarRecord{
		JarID:     ds.jarID,
		Line:      applyEntry(line, entry, meta),
		UpdatedAt: time.Now(),
	}
	if err := ds.db.Save(&rec).Error; err != nil {
		return "", err
	}
	return entry, nil
}

// JarID returns the jar identifier this store is bound to.
func (ds *DatabaseStore) JarID() string {
	return ds.jarID
}

// Close closes the database connection
func (ds *DatabaseStore) Close() error {
	sqlDB, err := ds.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
