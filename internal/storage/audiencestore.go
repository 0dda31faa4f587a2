package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/valter-silva-au/raptorflow/pkg/models"
	"gopkg.in/yaml.v3"
)

// AudienceFile represents the top-level structure of audiences.yaml.
type AudienceFile struct {
	Version    string                       `yaml:"version"`
	Workspaces map[string][]models.Audience `yaml:"workspaces"`
}

// AudienceStore manages the audiences (cohorts) defined per workspace. It
// satisfies core.AudienceProvider.
type AudienceStore interface {
	ListAudiences(ctx context.Context, workspaceID string) ([]models.Audience, error)
	AddAudience(workspaceID string, audience models.Audience) (models.Audience, error)
	Load() error
	Save() error
}

type fileAudienceStore struct {
	basePath string
	data     AudienceFile
}

// NewAudienceStore creates an AudienceStore backed by audiences.yaml in the
// given base directory.
func NewAudienceStore(basePath string) AudienceStore {
	return &fileAudienceStore{
		basePath: basePath,
		data:     emptyAudienceFile(),
	}
}

func emptyAudienceFile() AudienceFile {
	return AudienceFile{
		Version:    "1.0",
		Workspaces: make(map[string][]models.Audience),
	}
}

func (s *fileAudienceStore) filePath() string {
	return filepath.Join(s.basePath, "audiences.yaml")
}

// ListAudiences returns the audiences of workspaceID in insertion order.
func (s *fileAudienceStore) ListAudiences(ctx context.Context, workspaceID string) ([]models.Audience, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("listing audiences: %w", err)
	}
	list := s.data.Workspaces[workspaceID]
	out := make([]models.Audience, len(list))
	copy(out, list)
	return out, nil
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// slugify converts a display name into an audience id.
func slugify(name string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// AddAudience appends an audience to workspaceID. An empty ID is derived
// from the name.
func (s *fileAudienceStore) AddAudience(workspaceID string, audience models.Audience) (models.Audience, error) {
	if strings.TrimSpace(workspaceID) == "" {
		return models.Audience{}, fmt.Errorf("adding audience: workspace id must not be empty")
	}
	audience.Name = strings.TrimSpace(audience.Name)
	if audience.Name == "" {
		return models.Audience{}, fmt.Errorf("adding audience: name must not be empty")
	}
	if audience.ID == "" {
		audience.ID = slugify(audience.Name)
	}
	if audience.ID == "" {
		return models.Audience{}, fmt.Errorf("adding audience: cannot derive an id from %q", audience.Name)
	}
	for _, existing := range s.data.Workspaces[workspaceID] {
		if existing.ID == audience.ID {
			return models.Audience{}, fmt.Errorf("adding audience: audience %s already exists in %s", audience.ID, workspaceID)
		}
	}
	s.data.Workspaces[workspaceID] = append(s.data.Workspaces[workspaceID], audience)
	return audience, nil
}

func (s *fileAudienceStore) Load() error {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			s.data = emptyAudienceFile()
			return nil
		}
		return fmt.Errorf("loading audiences: %w", err)
	}

	var af AudienceFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return fmt.Errorf("loading audiences: parsing YAML: %w", err)
	}
	if af.Workspaces == nil {
		af.Workspaces = make(map[string][]models.Audience)
	}
	s.data = af
	return nil
}

func (s *fileAudienceStore) Save() error {
	if err := os.MkdirAll(s.basePath, 0o750); err != nil {
		return fmt.Errorf("saving audiences: creating directory: %w", err)
	}
	data, err := yaml.Marshal(&s.data)
	if err != nil {
		return fmt.Errorf("saving audiences: marshaling YAML: %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, 0o600); err != nil {
		return fmt.Errorf("saving audiences: writing file: %w", err)
	}
	return nil
}
