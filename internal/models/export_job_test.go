package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExportJob_Validate(t *testing.T) {
	valid := func() *ExportJob {
		return &ExportJob{
			ID:      uuid.NewString(),
			Format:  ExportFormatXLSX,
			Headers: []string{"Name", "Plate"},
			Rows:    [][]string{{"Maria", "ABC-1234"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(j *ExportJob)
		wantErr bool
	}{
		{name: "valid", mutate: func(j *ExportJob) {}},
		{name: "no rows", mutate: func(j *ExportJob) { j.Rows = nil }},
		{name: "path in id", mutate: func(j *ExportJob) { j.ID = "../etc/passwd" }, wantErr: true},
		{name: "empty id", mutate: func(j *ExportJob) { j.ID = "" }, wantErr: true},
		{name: "unknown format", mutate: func(j *ExportJob) { j.Format = "csv" }, wantErr: true},
		{name: "no headers", mutate: func(j *ExportJob) { j.Headers = nil }, wantErr: true},
		{name: "short row", mutate: func(j *ExportJob) { j.Rows = [][]string{{"Maria"}} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := valid()
			tt.mutate(j)

			err := j.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
