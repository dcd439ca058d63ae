// Package robtop decodes whole service responses into records and builds the
// parameters of outgoing requests.
package robtop

import (
	"fmt"

	"dash-savior/robtop/rrecord"
	"dash-savior/robtop/rsplit"
)

type (
	ResponseKind string

	SearchResponse struct {
		Levels []rrecord.LevelDisplay `json:"levels"`
		Page   *rsplit.PageInfo       `json:"page"`
	}
	CommentsResponse struct {
		Comments []rrecord.Comment `json:"comments"`
		Page     *rsplit.PageInfo  `json:"page"`
	}

	ErrUnknownResponseKind struct {
		Kind ResponseKind
	}
)

const (
	ResponseKindSearch   = ResponseKind("search")
	ResponseKindLevel    = ResponseKind("level")
	ResponseKindSong     = ResponseKind("song")
	ResponseKindComments = ResponseKind("comments")
	ResponseKindUser     = ResponseKind("user")
)

const (
	// SecretCommon goes with every request to the game endpoints.
	SecretCommon = "Wmfd2893gb7"
)

func (r ErrUnknownResponseKind) Error() string {
	return fmt.Sprintf(`unknown response kind "%s"`, r.Kind)
}

func ResponseKinds() []ResponseKind {
	return []ResponseKind{
		ResponseKindSearch,
		ResponseKindLevel,
		ResponseKindSong,
		ResponseKindComments,
		ResponseKindUser,
	}
}
