// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package importer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/utils"
	"github.com/spacenote/spacenote/models"
)

// Importer replays a snapshot against a running server through the public
// HTTP API, authenticated with the admin API token. Entities that already
// exist on the server (409 responses) are skipped, so re-running the same
// snapshot is safe; notes and comments are always appended.
type Importer struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewImporter constructs an Importer talking to the server at baseURL.
// Returns an error if baseURL is empty or cannot be parsed.
func NewImporter(baseURL, adminToken string, timeout time.Duration, logger *logger.Logger) (*Importer, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewAPIClient(normalized, adminToken, timeout)

	return &Importer{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Run imports the whole snapshot: users first, then spaces with their notes
// and comments. Counts of imported and skipped entities are logged.
func (i *Importer) Run(ctx context.Context, snapshot Snapshot) error {
	for _, user := range snapshot.Users {
		if err := i.importUser(ctx, user); err != nil {
			return err
		}
	}

	for _, space := range snapshot.Spaces {
		if err := i.importSpace(ctx, space); err != nil {
			return err
		}
	}

	return nil
}

func (i *Importer) importUser(ctx context.Context, user SnapshotUser) error {
	resp, err := i.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": user.Username}).
		Post("/api/v1/users")
	if err != nil {
		return fmt.Errorf("create user request: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusConflict:
		i.logger.Info().Str("username", user.Username).Msg("user already exists, skipping")
	case resp.IsError():
		return fmt.Errorf("create user %q: %s", user.Username, resp.Status())
	default:
		i.logger.Info().Str("username", user.Username).Msg("user imported")
	}

	return nil
}

func (i *Importer) importSpace(ctx context.Context, space SnapshotSpace) error {
	fields := make([]models.FieldDef, 0, len(space.Fields))
	for _, f := range space.Fields {
		def, err := f.FieldDef()
		if err != nil {
			return fmt.Errorf("space %q: %w", space.Slug, err)
		}
		fields = append(fields, def)
	}

	body := models.Space{
		Slug:    space.Slug,
		Title:   space.Title,
		Members: space.Members,
		Fields:  fields,
	}

	resp, err := i.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/api/v1/spaces")
	if err != nil {
		return fmt.Errorf("create space request: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusConflict:
		i.logger.Info().Str("slug", space.Slug).Msg("space already exists, skipping")
	case resp.IsError():
		return fmt.Errorf("create space %q: %s", space.Slug, resp.Status())
	default:
		i.logger.Info().Str("slug", space.Slug).Msg("space imported")
	}

	for _, note := range space.Notes {
		if err := i.importNote(ctx, space.Slug, note); err != nil {
			return err
		}
	}

	return nil
}

func (i *Importer) importNote(ctx context.Context, slug string, note SnapshotNote) error {
	fields, err := note.FieldMap()
	if err != nil {
		return fmt.Errorf("space %q: %w", slug, err)
	}

	var created models.Note
	resp, err := i.client.R().
		SetContext(ctx).
		SetBody(map[string]models.FieldMap{"fields": fields}).
		SetResult(&created).
		Post(fmt.Sprintf("/api/v1/spaces/%s/notes", slug))
	if err != nil {
		return fmt.Errorf("create note request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("create note in space %q: %s", slug, resp.Status())
	}

	i.logger.Info().Str("slug", slug).Int64("number", created.Number).Msg("note imported")

	for _, comment := range note.Comments {
		if err := i.importComment(ctx, slug, created.Number, comment); err != nil {
			return err
		}
	}

	return nil
}

func (i *Importer) importComment(ctx context.Context, slug string, noteNumber int64, comment SnapshotComment) error {
	resp, err := i.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"content": comment.Content}).
		Post(fmt.Sprintf("/api/v1/spaces/%s/notes/%d/comments", slug, noteNumber))
	if err != nil {
		return fmt.Errorf("create comment request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("create comment on note %d in space %q: %s", noteNumber, slug, resp.Status())
	}

	return nil
}
