package rsplit

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"dash-savior/robtop/rfield"
	"dash-savior/robtop/rschema"
)

type (
	// Splitter is safe for concurrent use. The zero value logs nothing.
	Splitter struct {
		Logger *zap.Logger
	}
)

var defaultSplitter = Splitter{}

// SplitAndJoin splits a search response and returns its joined entities.
func SplitAndJoin(text string) ([]JoinedEntity, error) {
	result, err := defaultSplitter.SplitSearch(text)
	if err != nil {
		return nil, err
	}
	return result.Entities, nil
}

func (r Splitter) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// segments checks the answers shared by every endpoint and splits text on
// SegmentSeparator, requiring at least minimum segments.
func segments(text string, minimum int) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, MalformedResponseError{Reason: "empty response"}
	}
	if text == ResponseRejected {
		return nil, MalformedResponseError{Reason: "request rejected"}
	}
	parts := strings.Split(text, SegmentSeparator)
	if len(parts) < minimum {
		return nil, MalformedResponseError{
			Reason: "expected at least " + strconv.Itoa(minimum) + " segments, got " + strconv.Itoa(len(parts)),
		}
	}
	return parts, nil
}

func splitNonEmpty(text string, separator string) []string {
	return lo.Filter(
		strings.Split(text, separator),
		func(item string, _ int) bool {
			return item != ""
		},
	)
}

// SplitSearch handles "entities#creators#songs#page#hash". The songs segment
// and everything after it may be absent.
func (r Splitter) SplitSearch(text string) (*SearchResult, error) {
	parts, err := segments(text, 2)
	if err != nil {
		return nil, err
	}
	entities, err := r.splitEntities(parts[0])
	if err != nil {
		return nil, err
	}
	creators := r.splitCreators(parts[1])
	songs := []*rfield.FieldMap{}
	if len(parts) > 2 {
		songs, err = r.splitSongs(parts[2])
		if err != nil {
			return nil, err
		}
	}
	result := SearchResult{
		Entities: r.join(entities, creators, songs),
	}
	if len(parts) > 3 && parts[3] != "" {
		page, err := ParsePageInfo(parts[3])
		if err != nil {
			return nil, err
		}
		result.Page = page
	}
	if len(parts) > 4 {
		result.Hash = parts[4]
	}
	return &result, nil
}

func (r Splitter) splitEntities(segment string) ([]*rfield.FieldMap, error) {
	rawEntities := splitNonEmpty(segment, EntitySeparator)
	entities := make([]*rfield.FieldMap, 0, len(rawEntities))
	for i, rawEntity := range rawEntities {
		entity, err := rschema.Apply(rschema.KindLevelSummary, rfield.Tokenize(rawEntity, rfield.DefaultSeparator))
		if err != nil {
			return nil, errors.Wrapf(err, "splitEntities error: entity %d", i)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (r Splitter) splitCreators(segment string) []Creator {
	return lo.FilterMap(
		splitNonEmpty(segment, EntitySeparator),
		func(rawCreator string, _ int) (Creator, bool) {
			creator, ok := ParseCreator(rawCreator)
			if !ok {
				r.logger().Debug("skipping creator without a player id", zap.String("creator", rawCreator))
			}
			return creator, ok
		},
	)
}

// ParseCreator reads "playerID:name:accountID", or the same parts joined by
// commas when the entry holds no colon. The name and account id may be
// missing; a missing or non numeric player id makes the entry unusable.
func ParseCreator(text string) (Creator, bool) {
	separator := CreatorSeparator
	if !strings.Contains(text, CreatorSeparator) {
		separator = CreatorAltSeparator
	}
	parts := strings.Split(text, separator)
	if !rfield.IsDigits(parts[0]) {
		return Creator{}, false
	}
	playerID, err := strconv.Atoi(parts[0])
	if err != nil {
		return Creator{}, false
	}
	creator := Creator{PlayerID: playerID}
	if len(parts) > 1 {
		creator.Name = parts[1]
	}
	if len(parts) > 2 {
		creator.AccountID, _ = strconv.Atoi(parts[2])
	}
	return creator, true
}

func (r Splitter) splitSongs(segment string) ([]*rfield.FieldMap, error) {
	rawSongs := splitNonEmpty(segment, SongSeparator)
	songs := make([]*rfield.FieldMap, 0, len(rawSongs))
	for i, rawSong := range rawSongs {
		song, err := tokenizeSong(rawSong)
		if err != nil {
			return nil, errors.Wrapf(err, "splitSongs error: song %d", i)
		}
		songs = append(songs, song)
	}
	return songs, nil
}

func tokenizeSong(text string) (*rfield.FieldMap, error) {
	text = strings.ReplaceAll(text, SongDecoration, "")
	return rschema.Apply(rschema.KindSong, rfield.Tokenize(text, SongFieldSeparator))
}

// join resolves every entity against indexes built once per response. When
// ids repeat, the first creator or song with that id wins.
func (r Splitter) join(
	entities []*rfield.FieldMap,
	creators []Creator,
	songs []*rfield.FieldMap,
) []JoinedEntity {
	creatorIndex := make(map[int]int, len(creators))
	for i, creator := range creators {
		if _, ok := creatorIndex[creator.PlayerID]; !ok {
			creatorIndex[creator.PlayerID] = i
		}
	}
	songIndex := make(map[int]int, len(songs))
	for i, song := range songs {
		songID, ok := song.GetInt(FieldSongID)
		if !ok {
			continue
		}
		if _, ok := songIndex[songID]; !ok {
			songIndex[songID] = i
		}
	}

	return lo.Map(entities, func(entity *rfield.FieldMap, _ int) JoinedEntity {
		joined := JoinedEntity{Entity: entity}
		if creatorID, ok := entity.GetInt(FieldCreatorPlayerID); ok {
			if i, ok := creatorIndex[creatorID]; ok {
				creator := creators[i]
				joined.Creator = &creator
			} else {
				r.logger().Debug("creator not found", zap.Int("player_id", creatorID))
			}
		}
		songID := entity.IntOr(FieldCustomSongID, NoCustomSong)
		if songID != NoCustomSong {
			if i, ok := songIndex[songID]; ok {
				joined.Song = songs[i]
			} else {
				r.logger().Debug("song not found", zap.Int("song_id", songID))
			}
		}
		return joined
	})
}

// ParsePageInfo reads "total:offset:amount".
func ParsePageInfo(text string) (*PageInfo, error) {
	parts := strings.Split(text, CommentUserSeparator)
	if len(parts) != 3 {
		return nil, MalformedResponseError{Reason: "page info " + strconv.Quote(text)}
	}
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		number, err := strconv.Atoi(part)
		if err != nil {
			return nil, MalformedResponseError{Reason: "page info " + strconv.Quote(text)}
		}
		numbers = append(numbers, number)
	}
	return &PageInfo{
		Total:  numbers[0],
		Offset: numbers[1],
		Amount: numbers[2],
	}, nil
}
