// Package rrecord builds typed records from decoded field maps.
package rrecord

import (
	"dash-savior/robtop/rdiff"
)

type (
	Length string
	Rating string

	Level struct {
		ID              int              `json:"id"`
		Name            string           `json:"name"`
		Description     string           `json:"description"`
		LevelData       string           `json:"level_data,omitempty"`
		Version         int              `json:"version"`
		CreatorPlayerID int              `json:"creator_player_id"`
		Downloads       int              `json:"downloads"`
		Likes           int              `json:"likes"`
		Copyable        bool             `json:"copyable"`
		Password        string           `json:"password,omitempty"`
		Length          Length           `json:"length"`
		RequestedStars  int              `json:"requested_stars"`
		Stars           int              `json:"stars"`
		Coins           int              `json:"coins"`
		VerifiedCoins   bool             `json:"verified_coins"`
		CustomSongID    int              `json:"custom_song_id,omitempty"`
		OfficialSong    int              `json:"official_song"`
		SongIDs         []int            `json:"song_ids"`
		SFXIDs          []int            `json:"sfx_ids"`
		DailyID         int              `json:"daily_id"`
		IsDaily         bool             `json:"is_daily"`
		IsWeekly        bool             `json:"is_weekly"`
		CopiedLevelID   int              `json:"copied_level_id"`
		LowDetailMode   bool             `json:"low_detail_mode"`
		TwoPlayerMode   bool             `json:"two_player_mode"`
		InGauntlet      bool             `json:"in_gauntlet"`
		Rating          Rating           `json:"rating"`
		Difficulty      rdiff.Difficulty `json:"difficulty"`
	}
	Creator struct {
		PlayerID  int    `json:"player_id"`
		Name      string `json:"name"`
		AccountID int    `json:"account_id"`
	}
	Song struct {
		ID             int     `json:"id"`
		Name           string  `json:"name"`
		ArtistID       int     `json:"artist_id"`
		ArtistName     string  `json:"artist_name"`
		ArtistVerified bool    `json:"artist_verified"`
		SizeMB         float64 `json:"size_mb"`
		YoutubeLink    string  `json:"youtube_link,omitempty"`
		Link           string  `json:"link,omitempty"`
		IsNCS          bool    `json:"is_ncs"`
		IsLibrarySong  bool    `json:"is_library_song"`
	}
	Comment struct {
		LevelID        int      `json:"level_id"`
		Content        string   `json:"content"`
		AuthorPlayerID int      `json:"author_player_id"`
		Likes          int      `json:"likes"`
		MessageID      int      `json:"message_id"`
		IsSpam         bool     `json:"is_spam"`
		PostedAgo      string   `json:"posted_ago"`
		Percent        int      `json:"percent"`
		ModLevel       int      `json:"mod_level"`
		Author         *Creator `json:"author"`
	}
	// LevelDisplay is a search result: a level with its joined creator and
	// custom song, either of which may be missing.
	LevelDisplay struct {
		Level
		Creator *Creator `json:"creator"`
		Song    *Song    `json:"song"`
	}
)

const (
	LengthTiny       = Length("tiny")
	LengthShort      = Length("short")
	LengthMedium     = Length("medium")
	LengthLong       = Length("long")
	LengthXL         = Length("xl")
	LengthPlatformer = Length("platformer")
)

const (
	RatingNone      = Rating("none")
	RatingRated     = Rating("rated")
	RatingFeatured  = Rating("featured")
	RatingEpic      = Rating("epic")
	RatingMythic    = Rating("mythic")
	RatingLegendary = Rating("legendary")
)

const (
	// WeeklyIDOffset separates weekly demon ids from daily level ids.
	WeeklyIDOffset = 100000
	// LibrarySongIDStart is the first id of songs hosted by the music library.
	LibrarySongIDStart = 10000000
	YoutubeLinkPrefix  = "https://youtu.be/watch?v="
)

var (
	lengths = []Length{
		LengthTiny,
		LengthShort,
		LengthMedium,
		LengthLong,
		LengthXL,
		LengthPlatformer,
	}
	epicRatings = map[int]Rating{
		1: RatingEpic,
		2: RatingMythic,
		3: RatingLegendary,
	}
)
