package controllers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBackupFileName(t *testing.T) {
	id := uuid.NewString()
	name := BackupFileName(id)
	assert.Equal(t, "backup_"+id+".json", name)
}

func TestReportFileName(t *testing.T) {
	id := uuid.NewString()
	name := ReportFileName("orders", id)
	assert.Equal(t, "orders_"+id+".json", name)
}
