package rsplit

import (
	"strings"

	"github.com/pkg/errors"

	"dash-savior/robtop/rfield"
	"dash-savior/robtop/rschema"
)

// SplitLevel decodes a level download response. Everything after the first
// segment is hashes and creator info that the level itself does not need.
func (r Splitter) SplitLevel(text string) (*rfield.FieldMap, error) {
	parts, err := segments(text, 1)
	if err != nil {
		return nil, err
	}
	level, err := rschema.Apply(rschema.KindLevelDownload, rfield.Tokenize(parts[0], rfield.DefaultSeparator))
	if err != nil {
		return nil, errors.Wrap(err, "SplitLevel error")
	}
	return level, nil
}

// SplitSong decodes a single "1~|~id~|~2~|~name..." song info response.
func (r Splitter) SplitSong(text string) (*rfield.FieldMap, error) {
	if strings.TrimSpace(text) == ResponseSongNotAllowed {
		return nil, MalformedResponseError{Reason: "song is not allowed for use"}
	}
	parts, err := segments(text, 1)
	if err != nil {
		return nil, err
	}
	song, err := tokenizeSong(parts[0])
	if err != nil {
		return nil, errors.Wrap(err, "SplitSong error")
	}
	if !song.Has(FieldSongID) {
		return nil, MalformedResponseError{Reason: "song without an id"}
	}
	return song, nil
}

// SplitUser decodes a "1:name:2:id..." user info response.
func (r Splitter) SplitUser(text string) (*rfield.FieldMap, error) {
	parts, err := segments(text, 1)
	if err != nil {
		return nil, err
	}
	return rschema.Apply(rschema.KindUser, rfield.Tokenize(parts[0], rfield.DefaultSeparator))
}

// SplitComments decodes "comment:user|comment:user#page". Comment and user
// are each tokenized with "~".
func (r Splitter) SplitComments(text string) ([]CommentEntry, *PageInfo, error) {
	parts, err := segments(text, 1)
	if err != nil {
		return nil, nil, err
	}
	rawEntries := splitNonEmpty(parts[0], EntitySeparator)
	entries := make([]CommentEntry, 0, len(rawEntries))
	for i, rawEntry := range rawEntries {
		entry, err := splitComment(rawEntry)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "SplitComments error: comment %d", i)
		}
		entries = append(entries, entry)
	}

	var page *PageInfo
	if len(parts) > 1 && parts[1] != "" {
		page, err = ParsePageInfo(parts[1])
		if err != nil {
			return nil, nil, err
		}
	}
	return entries, page, nil
}

func splitComment(text string) (CommentEntry, error) {
	rawComment, rawUser, hasUser := strings.Cut(text, CommentUserSeparator)
	comment, err := rschema.Apply(rschema.KindComment, rfield.Tokenize(rawComment, CommentFieldSeparator))
	if err != nil {
		return CommentEntry{}, err
	}
	entry := CommentEntry{Comment: comment}
	if hasUser {
		entry.User, err = rschema.Apply(rschema.KindUser, rfield.Tokenize(rawUser, CommentFieldSeparator))
		if err != nil {
			return CommentEntry{}, err
		}
	}
	return entry, nil
}

func SplitLevel(text string) (*rfield.FieldMap, error) {
	return defaultSplitter.SplitLevel(text)
}

func SplitSong(text string) (*rfield.FieldMap, error) {
	return defaultSplitter.SplitSong(text)
}

func SplitUser(text string) (*rfield.FieldMap, error) {
	return defaultSplitter.SplitUser(text)
}

func SplitComments(text string) ([]CommentEntry, *PageInfo, error) {
	return defaultSplitter.SplitComments(text)
}
