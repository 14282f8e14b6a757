package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/reptrack/reptrack/internal/constants"
)

func setupTestDB(t *testing.T) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE habits (id TEXT PRIMARY KEY, name TEXT)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO habits (id, name) VALUES ('h1', 'Push-ups')`); err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}

	return dbPath
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Fatalf("backup file was not created: %s", backupPath)
	}
	if !strings.HasPrefix(filepath.Base(backupPath), constants.BackupFilePrefix) {
		t.Errorf("backup name %q missing prefix", filepath.Base(backupPath))
	}

	// The backup is a valid database with the data intact.
	db, err := sql.Open("sqlite", backupPath)
	if err != nil {
		t.Fatalf("failed to open backup database: %v", err)
	}
	defer db.Close()

	var name string
	if err := db.QueryRow("SELECT name FROM habits WHERE id = 'h1'").Scan(&name); err != nil {
		t.Fatalf("failed to query backup database: %v", err)
	}
	if name != "Push-ups" {
		t.Errorf("backup data = %q, want Push-ups", name)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))

	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestListBackups(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	// No backup dir yet.
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("expected non-zero backup size")
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	for _, name := range []string{"notes.txt", "other-20240101-1200.db", constants.BackupFilePrefix + "garbage" + constants.BackupFileSuffix} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected foreign files ignored, got %d backups", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Mutate the live database after the backup.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec("DELETE FROM habits"); err != nil {
		t.Fatalf("failed to mutate database: %v", err)
	}
	db.Close()

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open restored database: %v", err)
	}
	defer restored.Close()

	var count int
	if err := restored.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		t.Fatalf("failed to query restored database: %v", err)
	}
	if count != 1 {
		t.Errorf("restored row count = %d, want 1", count)
	}
}

func TestRestoreBackupRejectsGarbage(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	garbage := filepath.Join(t.TempDir(), "garbage.db")
	if err := os.WriteFile(garbage, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write garbage file: %v", err)
	}

	if err := mgr.RestoreBackup(garbage); err == nil {
		t.Error("expected error restoring invalid backup")
	}
}
