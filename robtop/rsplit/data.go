// Package rsplit breaks multi-part responses into their substreams and joins
// the primary entities with the creators and songs they reference.
package rsplit

import (
	"fmt"

	"dash-savior/robtop/rfield"
)

type (
	// Creator is a positional "playerID:name:accountID" entry, not a FieldMap.
	Creator struct {
		PlayerID  int    `json:"player_id"`
		Name      string `json:"name"`
		AccountID int    `json:"account_id"`
	}
	// JoinedEntity bundles a primary entity with its resolved creator and
	// song. Both are nil when they could not be matched.
	JoinedEntity struct {
		Entity  *rfield.FieldMap `json:"entity"`
		Creator *Creator         `json:"creator"`
		Song    *rfield.FieldMap `json:"song"`
	}
	PageInfo struct {
		Total  int `json:"total"`
		Offset int `json:"offset"`
		Amount int `json:"amount"`
	}
	SearchResult struct {
		Entities []JoinedEntity `json:"entities"`
		Page     *PageInfo      `json:"page"`
		Hash     string         `json:"hash"`
	}
	// CommentEntry holds a comment and its author. User is nil for profile
	// posts, which carry no author part.
	CommentEntry struct {
		Comment *rfield.FieldMap `json:"comment"`
		User    *rfield.FieldMap `json:"user"`
	}

	MalformedResponseError struct {
		Reason string
	}
)

const (
	SegmentSeparator      = "#"
	EntitySeparator       = "|"
	SongSeparator         = "~:~"
	SongFieldSeparator    = "|"
	SongDecoration        = "~"
	CommentFieldSeparator = "~"
	CommentUserSeparator  = ":"
	CreatorSeparator      = ":"
	CreatorAltSeparator   = ","
)

const (
	FieldCreatorPlayerID = "6"
	FieldCustomSongID    = "35"
	FieldSongID          = "1"
	// NoCustomSong in FieldCustomSongID means the level uses a built-in track.
	NoCustomSong = 0
)

const (
	ResponseRejected       = "-1"
	ResponseSongNotAllowed = "-2"
)

func (r MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %s", r.Reason)
}
