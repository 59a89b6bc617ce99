package helper

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ===============================
   Cursor pagination
   Lists are ordered by (created_at DESC, id DESC); the cursor is the
   last row of the previous page, encoded opaquely for the client.
=================================*/

const (
	DefaultLimit = 25
	MaxLimit     = 200
)

type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

func (cur Cursor) IsZero() bool { return cur.ID == uuid.Nil }

// EncodeCursor packs (created_at, id) into an opaque base64 token.
func EncodeCursor(createdAt time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%d|%s", createdAt.UnixNano(), id.String())
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor reverses EncodeCursor. Empty input yields a zero cursor.
func DecodeCursor(token string) (Cursor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Cursor{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, NewValidationErr("cursor", "malformed cursor")
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return Cursor{}, NewValidationErr("cursor", "malformed cursor")
	}
	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Cursor{}, NewValidationErr("cursor", "malformed cursor")
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return Cursor{}, NewValidationErr("cursor", "malformed cursor")
	}
	return Cursor{CreatedAt: time.Unix(0, nanos), ID: id}, nil
}

type Paging struct {
	Limit  int
	Cursor Cursor
}

// ResolvePaging reads ?limit= and ?cursor= with normalization.
func ResolvePaging(c *fiber.Ctx) (Paging, error) {
	limit, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit", strconv.Itoa(DefaultLimit))))
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	cur, err := DecodeCursor(c.Query("cursor"))
	if err != nil {
		return Paging{}, err
	}
	return Paging{Limit: limit, Cursor: cur}, nil
}

// Pagination is the list-response meta block.
type Pagination struct {
	Limit      int    `json:"limit"`
	Count      int    `json:"count"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// BuildPagination derives the meta block. nextAt/nextID come from the
// last row of the page and are only used when hasMore is true.
func BuildPagination(limit, count int, hasMore bool, nextAt time.Time, nextID uuid.UUID) Pagination {
	p := Pagination{Limit: limit, Count: count, HasMore: hasMore}
	if hasMore {
		p.NextCursor = EncodeCursor(nextAt, nextID)
	}
	return p
}
