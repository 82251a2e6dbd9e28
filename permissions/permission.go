package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is one row of the embedded route table. Path is the chi route
// pattern as the router reports it, and Permissions lists the staff levels
// allowed through; an empty list means any authenticated user.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions looks up the entry for a route pattern and method. An
// unknown route resolves to the zero Permission, which never skips auth.
func (p *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(p.Endpoints, func(endpoint Permission) bool {
		return endpoint.Path == path && endpoint.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return p.Endpoints[idx]
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
