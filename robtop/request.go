package robtop

import (
	"strconv"

	"github.com/pkg/errors"

	"dash-savior/robtop/rcrypt"
	"dash-savior/robtop/rdiff"
)

type (
	SearchRequest struct {
		Query        string
		Difficulties []rdiff.Difficulty
		DemonTier    rdiff.Difficulty
		Page         int
	}
	// CommentRequest carries the comment in plain text; it is encoded here.
	CommentRequest struct {
		AccountID int
		UserName  string
		Password  string
		Comment   string
		LevelID   int
		Percent   int
	}
)

func (r SearchRequest) Params() (map[string]string, error) {
	filter, err := rdiff.NewSearchFilter(r.Difficulties, r.DemonTier)
	if err != nil {
		return nil, errors.Wrap(err, "SearchRequest.Params error")
	}
	params := filter.Params()
	params["str"] = r.Query
	params["page"] = strconv.Itoa(r.Page)
	params["secret"] = SecretCommon
	return params, nil
}

func (r CommentRequest) Params() (map[string]string, error) {
	comment, err := rcrypt.Encode(r.Comment, rcrypt.SchemeBase64, "")
	if err != nil {
		return nil, errors.Wrap(err, "CommentRequest.Params error")
	}
	chk, err := rcrypt.MustLookupEndpoint(rcrypt.EndpointUploadComment).Checksum(map[string]any{
		"userName": r.UserName,
		"comment":  comment,
		"levelID":  r.LevelID,
		"percent":  r.Percent,
	})
	if err != nil {
		return nil, errors.Wrap(err, "CommentRequest.Params error")
	}
	return map[string]string{
		"accountID": strconv.Itoa(r.AccountID),
		"gjp2":      rcrypt.EncodeGJP2(r.Password),
		"userName":  r.UserName,
		"comment":   comment,
		"levelID":   strconv.Itoa(r.LevelID),
		"percent":   strconv.Itoa(r.Percent),
		"chk":       chk,
		"secret":    SecretCommon,
	}, nil
}
