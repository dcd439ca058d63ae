package robtop

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"dash-savior/robtop/rrecord"
	"dash-savior/robtop/rsplit"
)

type (
	Decoder struct {
		splitter rsplit.Splitter
	}
)

func NewDecoder(logger *zap.Logger) *Decoder {
	return &Decoder{
		splitter: rsplit.Splitter{Logger: logger},
	}
}

var defaultDecoder = NewDecoder(nil)

func (r *Decoder) DecodeSearchResponse(text string) (*SearchResponse, error) {
	result, err := r.splitter.SplitSearch(text)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeSearchResponse error")
	}
	levels := make([]rrecord.LevelDisplay, 0, len(result.Entities))
	for i, entity := range result.Entities {
		level, err := rrecord.NewLevelDisplay(entity)
		if err != nil {
			return nil, errors.Wrapf(err, "DecodeSearchResponse error: entity %d", i)
		}
		levels = append(levels, *level)
	}
	return &SearchResponse{
		Levels: levels,
		Page:   result.Page,
	}, nil
}

func (r *Decoder) DecodeLevelResponse(text string) (*rrecord.Level, error) {
	fields, err := r.splitter.SplitLevel(text)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeLevelResponse error")
	}
	return rrecord.NewLevel(fields)
}

func (r *Decoder) DecodeSongResponse(text string) (*rrecord.Song, error) {
	fields, err := r.splitter.SplitSong(text)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeSongResponse error")
	}
	return rrecord.NewSong(fields)
}

func (r *Decoder) DecodeCommentsResponse(text string) (*CommentsResponse, error) {
	entries, page, err := r.splitter.SplitComments(text)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeCommentsResponse error")
	}
	return &CommentsResponse{
		Comments: lo.Map(entries, func(entry rsplit.CommentEntry, _ int) rrecord.Comment {
			return *rrecord.NewComment(entry)
		}),
		Page: page,
	}, nil
}

func (r *Decoder) DecodeUserResponse(text string) (*rrecord.Creator, error) {
	fields, err := r.splitter.SplitUser(text)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeUserResponse error")
	}
	return rrecord.NewCreatorFromUser(fields), nil
}

// decodeFields stops after splitting, leaving the field maps undecoded into
// records.
func (r *Decoder) decodeFields(kind ResponseKind, text string) (any, error) {
	switch kind {
	case ResponseKindSearch:
		return r.splitter.SplitSearch(text)
	case ResponseKindLevel:
		return r.splitter.SplitLevel(text)
	case ResponseKindSong:
		return r.splitter.SplitSong(text)
	case ResponseKindComments:
		entries, _, err := r.splitter.SplitComments(text)
		return entries, err
	case ResponseKindUser:
		return r.splitter.SplitUser(text)
	}
	return nil, ErrUnknownResponseKind{Kind: kind}
}

func (r *Decoder) decodeRecords(kind ResponseKind, text string) (any, error) {
	switch kind {
	case ResponseKindSearch:
		return r.DecodeSearchResponse(text)
	case ResponseKindLevel:
		return r.DecodeLevelResponse(text)
	case ResponseKindSong:
		return r.DecodeSongResponse(text)
	case ResponseKindComments:
		return r.DecodeCommentsResponse(text)
	case ResponseKindUser:
		return r.DecodeUserResponse(text)
	}
	return nil, ErrUnknownResponseKind{Kind: kind}
}

// DecodeResponse turns a response body of kind into indented JSON. With debug
// set the output is the decoded field maps instead of the records.
func (r *Decoder) DecodeResponse(kind ResponseKind, bs []byte, debug bool) ([]byte, error) {
	decodeFunc := r.decodeRecords
	if debug {
		decodeFunc = r.decodeFields
	}
	value, err := decodeFunc(kind, string(bs))
	if err != nil {
		return nil, err
	}
	result, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "DecodeResponse error")
	}
	return result, nil
}

func DecodeSearchResponse(text string) (*SearchResponse, error) {
	return defaultDecoder.DecodeSearchResponse(text)
}

func DecodeLevelResponse(text string) (*rrecord.Level, error) {
	return defaultDecoder.DecodeLevelResponse(text)
}

func DecodeSongResponse(text string) (*rrecord.Song, error) {
	return defaultDecoder.DecodeSongResponse(text)
}

func DecodeCommentsResponse(text string) (*CommentsResponse, error) {
	return defaultDecoder.DecodeCommentsResponse(text)
}

func DecodeUserResponse(text string) (*rrecord.Creator, error) {
	return defaultDecoder.DecodeUserResponse(text)
}

func DecodeResponse(kind ResponseKind, bs []byte, debug bool) ([]byte, error) {
	return defaultDecoder.DecodeResponse(kind, bs, debug)
}
