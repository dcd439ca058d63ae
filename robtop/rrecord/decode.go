package rrecord

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"dash-savior/robtop/rcrypt"
	"dash-savior/robtop/rdiff"
	"dash-savior/robtop/rfield"
	"dash-savior/robtop/rsplit"
)

// NewLevel expects a field map that already went through the level schema.
func NewLevel(fields *rfield.FieldMap) (*Level, error) {
	id, ok := fields.GetInt("1")
	if !ok {
		return nil, errors.New("NewLevel error: level without an id")
	}
	difficulty, err := rdiff.ResolveFieldMap(fields)
	if err != nil {
		return nil, errors.Wrapf(err, "NewLevel error: level %d", id)
	}
	length, err := decodeLength(fields.IntOr("15", 0))
	if err != nil {
		return nil, errors.Wrapf(err, "NewLevel error: level %d", id)
	}
	name, _ := fields.GetText("2")
	description, _ := fields.GetText("3")
	levelData, _ := fields.GetText("4")
	songIDs, _ := fields.GetText("52")
	sfxIDs, _ := fields.GetText("53")
	copyable, password := decodePassword(fields)
	dailyID := fields.IntOr("41", -1)

	return &Level{
		ID:              id,
		Name:            name,
		Description:     description,
		LevelData:       levelData,
		Version:         fields.IntOr("5", 0),
		CreatorPlayerID: fields.IntOr("6", 0),
		Downloads:       fields.IntOr("10", 0),
		Likes:           fields.IntOr("14", 0),
		Copyable:        copyable,
		Password:        password,
		Length:          length,
		RequestedStars:  fields.IntOr("39", 0),
		Stars:           fields.IntOr("18", 0),
		Coins:           fields.IntOr("37", 0),
		VerifiedCoins:   fields.Truthy("38"),
		CustomSongID:    fields.IntOr("35", 0),
		OfficialSong:    fields.IntOr("12", 0),
		SongIDs:         rfield.ParseIntList(songIDs),
		SFXIDs:          rfield.ParseIntList(sfxIDs),
		DailyID:         dailyID,
		IsDaily:         dailyID >= 0 && dailyID < WeeklyIDOffset,
		IsWeekly:        dailyID >= WeeklyIDOffset,
		CopiedLevelID:   fields.IntOr("30", 0),
		LowDetailMode:   fields.Truthy("40"),
		TwoPlayerMode:   fields.Truthy("31"),
		InGauntlet:      fields.Truthy("44"),
		Rating:          decodeRating(fields),
		Difficulty:      difficulty,
	}, nil
}

func decodeLength(code int) (Length, error) {
	if code < 0 || code >= len(lengths) {
		return "", errors.Errorf("decodeLength error: unknown length %d", code)
	}
	return lengths[code], nil
}

func decodeRating(fields *rfield.FieldMap) Rating {
	if rating, ok := epicRatings[fields.IntOr("42", 0)]; ok {
		return rating
	}
	if fields.IntOr("19", 0) >= 1 {
		return RatingFeatured
	}
	if fields.IntOr("18", 0) != 0 {
		return RatingRated
	}
	return RatingNone
}

// decodePassword reads the decoded field 27: 0 is not copyable, the free copy
// code is copyable without a password and "1" followed by digits carries the
// password.
func decodePassword(fields *rfield.FieldMap) (copyable bool, password string) {
	value, ok := fields.Get("27")
	if !ok {
		return false, ""
	}
	text := rfield.Text(value)
	switch {
	case text == "0" || text == "":
		return false, ""
	case text == rcrypt.FreeCopyCode || text == "1":
		return true, ""
	case strings.HasPrefix(text, "1"):
		return true, text[1:]
	}
	return true, text
}

func NewCreator(creator rsplit.Creator) *Creator {
	return &Creator{
		PlayerID:  creator.PlayerID,
		Name:      creator.Name,
		AccountID: creator.AccountID,
	}
}

// NewCreatorFromUser reads the author part of a comment or a user info
// response.
func NewCreatorFromUser(fields *rfield.FieldMap) *Creator {
	name, _ := fields.GetText("1")
	return &Creator{
		PlayerID:  fields.IntOr("2", 0),
		Name:      name,
		AccountID: fields.IntOr("16", 0),
	}
}

func NewSong(fields *rfield.FieldMap) (*Song, error) {
	id, ok := fields.GetInt("1")
	if !ok {
		return nil, errors.New("NewSong error: song without an id")
	}
	name, _ := fields.GetText("2")
	artistName, _ := fields.GetText("4")
	song := Song{
		ID:             id,
		Name:           name,
		ArtistID:       fields.IntOr("3", 0),
		ArtistName:     artistName,
		ArtistVerified: fields.IntOr("8", 0) == 1,
		IsNCS:          fields.IntOr("11", 0) == 1,
		IsLibrarySong:  id >= LibrarySongIDStart,
	}
	if size, ok := fields.GetText("5"); ok && size != "" {
		sizeMB, err := strconv.ParseFloat(size, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "NewSong error: song %d size", id)
		}
		song.SizeMB = sizeMB
	}
	if videoID, ok := fields.GetText("6"); ok && videoID != "" {
		song.YoutubeLink = YoutubeLinkPrefix + videoID
	}
	if link, ok := fields.GetText("10"); ok && link != "" {
		unescaped, err := url.PathUnescape(link)
		if err != nil {
			return nil, errors.Wrapf(err, "NewSong error: song %d link", id)
		}
		song.Link = unescaped
	}
	return &song, nil
}

func NewComment(entry rsplit.CommentEntry) *Comment {
	fields := entry.Comment
	content, _ := fields.GetText("2")
	postedAgo, _ := fields.GetText("9")
	comment := Comment{
		LevelID:        fields.IntOr("1", 0),
		Content:        content,
		AuthorPlayerID: fields.IntOr("3", 0),
		Likes:          fields.IntOr("4", 0),
		MessageID:      fields.IntOr("6", 0),
		IsSpam:         fields.Truthy("7"),
		PostedAgo:      postedAgo,
		Percent:        fields.IntOr("10", 0),
		ModLevel:       fields.IntOr("11", 0),
	}
	if entry.User != nil {
		comment.Author = NewCreatorFromUser(entry.User)
		comment.Author.PlayerID = comment.AuthorPlayerID
	}
	return &comment
}

// NewLevelDisplay builds a search result. A song that fails to build is
// dropped like an unmatched one.
func NewLevelDisplay(joined rsplit.JoinedEntity) (*LevelDisplay, error) {
	level, err := NewLevel(joined.Entity)
	if err != nil {
		return nil, err
	}
	display := LevelDisplay{Level: *level}
	if joined.Creator != nil {
		display.Creator = NewCreator(*joined.Creator)
	}
	if joined.Song != nil {
		if song, err := NewSong(joined.Song); err == nil {
			display.Song = song
		}
	}
	return &display, nil
}
