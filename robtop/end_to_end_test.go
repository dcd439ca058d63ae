package robtop

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"dash-savior/robtop/rcrypt"
	"dash-savior/robtop/rdiff"
	"dash-savior/robtop/rrecord"
	"dash-savior/robtop/rsplit"
)

type EndToEndTestSuite struct {
	Responses map[ResponseKind]string
	R         *require.Assertions
	suite.Suite
}

func (suite *EndToEndTestSuite) SetupSuite() {
	suite.R = suite.Require()
	filePaths := map[ResponseKind]string{
		ResponseKindSearch:   "../testdata/search.txt",
		ResponseKindLevel:    "../testdata/level.txt",
		ResponseKindSong:     "../testdata/song.txt",
		ResponseKindComments: "../testdata/comments.txt",
		ResponseKindUser:     "../testdata/user.txt",
	}
	suite.Responses = lo.MapValues(
		filePaths,
		func(path string, _ ResponseKind) string {
			bs, err := os.ReadFile(path)
			suite.R.NoError(err)
			return string(bs)
		},
	)
}

func (suite *EndToEndTestSuite) TestDecodeSearchResponse() {
	response, err := DecodeSearchResponse(suite.Responses[ResponseKindSearch])
	suite.R.NoError(err)
	suite.R.Len(response.Levels, 3)
	suite.R.Equal(&rsplit.PageInfo{Total: 9999, Offset: 0, Amount: 10}, response.Page)

	first := response.Levels[0]
	suite.R.Equal("1st level", first.Name)
	suite.R.Equal("A classic level", first.Description)
	suite.R.Equal(rdiff.DifficultyHard, first.Difficulty)
	suite.R.Equal(rrecord.RatingRated, first.Rating)
	suite.R.Equal(&rrecord.Creator{PlayerID: 4170, Name: "RobTop", AccountID: 71}, first.Creator)
	suite.R.Nil(first.Song)

	second := response.Levels[1]
	suite.R.Equal(rdiff.DifficultyExtremeDemon, second.Difficulty)
	suite.R.Equal(rrecord.RatingEpic, second.Rating)
	suite.R.Equal("Riot", second.Creator.Name)
	suite.R.NotNil(second.Song)
	suite.R.Equal("At the Speed of Light", second.Song.Name)
	suite.R.Equal(
		"https://audio.ngfiles.com/467000/467339_At-the-Speed-of-Light-FINA.mp3",
		second.Song.Link,
	)
	suite.R.Equal([]int{467339, 1}, second.SongIDs)

	third := response.Levels[2]
	suite.R.Equal(rdiff.DifficultyAuto, third.Difficulty)
	suite.R.Nil(third.Creator)
	suite.R.Nil(third.Song)
	suite.R.Equal(4, third.OfficialSong)
}

func (suite *EndToEndTestSuite) TestDecodeLevelResponse() {
	level, err := DecodeLevelResponse(suite.Responses[ResponseKindLevel])
	suite.R.NoError(err)
	suite.R.Equal(128, level.ID)
	suite.R.Equal("kS38,1_40_2_125_3_105,kA13,0;1,1,2,15,3,15;", level.LevelData)
	suite.R.True(level.Copyable)
	suite.R.Equal("123456", level.Password)
	suite.R.Equal(rrecord.LengthShort, level.Length)
	suite.R.Equal(rdiff.DifficultyHard, level.Difficulty)
}

func (suite *EndToEndTestSuite) TestDecodeSongResponse() {
	song, err := DecodeSongResponse(suite.Responses[ResponseKindSong])
	suite.R.NoError(err)
	suite.R.Equal(467339, song.ID)
	suite.R.Equal("Dimrain47", song.ArtistName)
	suite.R.Equal(9.56, song.SizeMB)
	suite.R.True(song.ArtistVerified)
	suite.R.Empty(song.YoutubeLink)

	_, err = DecodeSongResponse("-2")
	suite.R.ErrorAs(err, &rsplit.MalformedResponseError{})
}

func (suite *EndToEndTestSuite) TestDecodeCommentsResponse() {
	response, err := DecodeCommentsResponse(suite.Responses[ResponseKindComments])
	suite.R.NoError(err)
	suite.R.Len(response.Comments, 2)
	suite.R.Equal("GG", response.Comments[0].Content)
	suite.R.Equal("RobTop", response.Comments[0].Author.Name)
	suite.R.Equal(71, response.Comments[0].Author.AccountID)
	suite.R.Equal(-2, response.Comments[1].Likes)
	suite.R.Equal("Too hard for me", response.Comments[1].Content)
	suite.R.Equal(2, response.Page.Total)
}

func (suite *EndToEndTestSuite) TestDecodeUserResponse() {
	user, err := DecodeUserResponse(suite.Responses[ResponseKindUser])
	suite.R.NoError(err)
	suite.R.Equal(&rrecord.Creator{PlayerID: 16, Name: "RobTop", AccountID: 71}, user)
}

func (suite *EndToEndTestSuite) TestDecodeResponse() {
	for kind, response := range suite.Responses {
		for _, debug := range []bool{false, true} {
			bs, err := DecodeResponse(kind, []byte(response), debug)
			suite.R.NoErrorf(err, "%s debug=%t", kind, debug)
			suite.R.Truef(json.Valid(bs), "%s debug=%t", kind, debug)
		}
	}

	bs, err := DecodeResponse(ResponseKindUser, []byte(suite.Responses[ResponseKindUser]), true)
	suite.R.NoError(err)
	fields := map[string]any{}
	suite.R.NoError(json.Unmarshal(bs, &fields))
	suite.R.Equal("RobTop", fields["1"])

	_, err = DecodeResponse(ResponseKind("unknown"), []byte("1:1"), false)
	suite.R.ErrorAs(err, &ErrUnknownResponseKind{})

	_, err = DecodeResponse(ResponseKindSearch, []byte("-1"), false)
	suite.R.ErrorAs(err, &rsplit.MalformedResponseError{})
}

func (suite *EndToEndTestSuite) TestSearchRequest() {
	params, err := SearchRequest{
		Query:     "bloodbath",
		DemonTier: rdiff.DifficultyExtremeDemon,
		Page:      1,
	}.Params()
	suite.R.NoError(err)
	suite.R.Equal(map[string]string{
		"str":         "bloodbath",
		"diff":        "-2",
		"demonFilter": "5",
		"page":        "1",
		"secret":      SecretCommon,
	}, params)

	_, err = SearchRequest{Difficulties: []rdiff.Difficulty{rdiff.DifficultyDemon, rdiff.DifficultyEasy}}.Params()
	suite.R.ErrorAs(err, &rdiff.InvalidFilterCombinationError{})
}

func (suite *EndToEndTestSuite) TestCommentRequest() {
	request := CommentRequest{
		AccountID: 71,
		UserName:  "RobTop",
		Password:  "hunter2",
		Comment:   "GG",
		LevelID:   128,
		Percent:   100,
	}
	params, err := request.Params()
	suite.R.NoError(err)
	suite.R.Equal("R0c=", params["comment"])
	suite.R.Equal(rcrypt.EncodeGJP2("hunter2"), params["gjp2"])

	endpoint := rcrypt.MustLookupEndpoint(rcrypt.EndpointUploadComment)
	expected := rcrypt.GenerateChecksum([]any{"RobTop", "R0c=", 128, 100}, endpoint.Key, endpoint.Salt)
	suite.R.Equal(expected, params["chk"])
}

func TestEndToEnd(t *testing.T) {
	suite.Run(t, new(EndToEndTestSuite))
}
