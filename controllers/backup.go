// controllers/backup.go
package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dulaj69/itp-final-project-sub000/utils"
)

// BackupFile is the on-disk shape of a full database dump
type BackupFile struct {
	ID          string              `json:"id"`
	CreatedAt   time.Time           `json:"created_at"`
	Collections map[string][]bson.M `json:"collections"`
}

// BackupController dumps and restores database collections to flat JSON
// files. This is an admin convenience, not a durable backup mechanism:
// no locking, no partial-failure recovery.
type BackupController struct {
	Client    *mongo.Client
	BackupDir string
	ReportDir string
}

// NewBackupController creates a new BackupController
func NewBackupController(client *mongo.Client) *BackupController {
	return &BackupController{
		Client:    client,
		BackupDir: "backups",
		ReportDir: "reports",
	}
}

// BackupFileName builds the on-disk name for a backup id
func BackupFileName(id string) string {
	return fmt.Sprintf("backup_%s.json", id)
}

// ReportFileName builds the on-disk name for a collection report
func ReportFileName(collection, id string) string {
	return fmt.Sprintf("%s_%s.json", collection, id)
}

func (bc *BackupController) dumpCollection(ctx context.Context, name string) ([]bson.M, error) {
	coll := utils.GetCollection(bc.Client, name)
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// CreateBackup reads every collection fully into memory and writes one
// JSON file keyed by a fresh identifier
func (bc *BackupController) CreateBackup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	names, err := bc.Client.Database(utils.DatabaseName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	backup := BackupFile{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		Collections: map[string][]bson.M{},
	}
	for _, name := range names {
		docs, err := bc.dumpCollection(ctx, name)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		backup.Collections[name] = docs
	}

	if err := os.MkdirAll(bc.BackupDir, os.ModePerm); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create backup directory")
		return
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	path := filepath.Join(bc.BackupDir, BackupFileName(backup.ID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to write backup file")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":          backup.ID,
		"created_at":  backup.CreatedAt,
		"collections": len(backup.Collections),
	})
}

// ListBackups returns the backup files currently on disk
func (bc *BackupController) ListBackups(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(bc.BackupDir)
	if os.IsNotExist(err) {
		respondJSON(w, http.StatusOK, []string{})
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	files := []string{}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "backup_") && strings.HasSuffix(entry.Name(), ".json") {
			files = append(files, entry.Name())
		}
	}
	respondJSON(w, http.StatusOK, files)
}

// DownloadBackup serves one backup file for the admin UI
func (bc *BackupController) DownloadBackup(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	path := filepath.Join(bc.BackupDir, BackupFileName(vars["id"]))
	if _, err := os.Stat(path); err != nil {
		respondError(w, http.StatusNotFound, "Backup not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, path)
}

// RestoreBackup wipes each collection named in the backup and re-inserts
// the saved documents. A failure partway leaves earlier collections
// replaced and later ones untouched.
func (bc *BackupController) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	path := filepath.Join(bc.BackupDir, BackupFileName(vars["id"]))

	data, err := os.ReadFile(path)
	if err != nil {
		respondError(w, http.StatusNotFound, "Backup not found")
		return
	}

	var backup BackupFile
	if err := json.Unmarshal(data, &backup); err != nil {
		respondError(w, http.StatusInternalServerError, "Corrupt backup file")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	restored := 0
	for name, docs := range backup.Collections {
		coll := utils.GetCollection(bc.Client, name)
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if len(docs) == 0 {
			restored++
			continue
		}
		payload := make([]interface{}, len(docs))
		for i, doc := range docs {
			payload[i] = doc
		}
		if _, err := coll.InsertMany(ctx, payload); err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		restored++
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Backup restored",
		"collections": restored,
	})
}

// CreateReport dumps a single collection to its own JSON file
func (bc *BackupController) CreateReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["collection"]

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	docs, err := bc.dumpCollection(ctx, name)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := os.MkdirAll(bc.ReportDir, os.ModePerm); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create report directory")
		return
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := ReportFileName(name, uuid.NewString())
	if err := os.WriteFile(filepath.Join(bc.ReportDir, filename), data, 0644); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to write report file")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"file":      filename,
		"documents": len(docs),
	})
}
