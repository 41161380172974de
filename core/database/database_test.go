package database

import (
	"testing"

	"restable/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		want    string
		wantErr bool
	}{
		{name: "sqlite", cfg: config.Config{DBDriver: "sqlite", DBPath: ":memory:"}, want: "sqlite"},
		{name: "mysql", cfg: config.Config{DBDriver: "mysql", DBURL: "user:pass@tcp(localhost:3306)/app"}, want: "mysql"},
		{name: "postgres", cfg: config.Config{DBDriver: "postgres", DBURL: "postgres://localhost/app"}, want: "postgres"},
		{name: "mysql without url", cfg: config.Config{DBDriver: "mysql"}, wantErr: true},
		{name: "unknown driver", cfg: config.Config{DBDriver: "oracle"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialector, err := Dialector(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dialector.Name())
		})
	}
}

func TestInitDBSqliteMemory(t *testing.T) {
	db, err := InitDB(&config.Config{Env: "test", DBDriver: "sqlite", DBPath: ":memory:"})
	require.NoError(t, err)

	var one int
	require.NoError(t, db.DB.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
