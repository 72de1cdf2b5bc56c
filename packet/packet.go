// Package packet is the wire codec of a seat's state.
//
// A packet is a JSON object:
//
//	{"turn":0,"playerNumber":0,"serverStatus":3,
//	 "hand":"5 18 40","playedCards":"-1 -1 -1","score":"0 0 0:0 0 0"}
//
// hand is a space separated list of card ids, empty when the hand is empty.
// playedCards always has one token per seat, -1 for a seat that has not
// played. score holds the tricks of every seat, a colon, then the cards of
// every seat.
package packet

import (
	"bytes"
	"errors"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/ratel-online/tricks/player"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errNotObject = errors.New("not a JSON object")

const (
	FieldTurn         = "turn"
	FieldPlayerNumber = "playerNumber"
	FieldServerStatus = "serverStatus"
	FieldHand         = "hand"
	FieldPlayedCards  = "playedCards"
	FieldScore        = "score"
)

type record struct {
	Turn         int    `json:"turn"`
	PlayerNumber int    `json:"playerNumber"`
	ServerStatus int    `json:"serverStatus"`
	Hand         string `json:"hand"`
	PlayedCards  string `json:"playedCards"`
	Score        string `json:"score"`
}

func Encode(s *player.State) []byte {
	return EncodeSnapshot(s.Snapshot())
}

func EncodeSnapshot(snapshot player.Snapshot) []byte {
	data, _ := json.Marshal(record{
		Turn:         snapshot.Turn,
		PlayerNumber: snapshot.Seat,
		ServerStatus: snapshot.Readiness,
		Hand:         formatHand(snapshot.Hand),
		PlayedCards:  formatTable(snapshot.Table),
		Score:        formatScores(snapshot.Scores),
	})
	return data
}

// Decode reads a packet into a fresh State. Any failure is a *ParseError or a
// *FormatError and yields no state.
func Decode(data []byte) (*player.State, error) {
	snapshot, err := DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	s, err := player.FromSnapshot(snapshot)
	if err != nil {
		return nil, formatErr("packet", "impossible state", err)
	}
	return s, nil
}

// DecodeSnapshot reads a packet without building a State. Keys match exactly;
// a value of the wrong JSON type is a *FormatError of that field.
func DecodeSnapshot(data []byte) (player.Snapshot, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return player.Snapshot{}, &ParseError{Err: errNotObject}
	}
	fields := map[string]jsoniter.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return player.Snapshot{}, &ParseError{Err: err}
	}
	in := fieldReader{fields: fields}
	snapshot := player.Snapshot{
		Turn:      in.intField(FieldTurn),
		Seat:      in.intField(FieldPlayerNumber),
		Readiness: in.intField(FieldServerStatus),
	}
	hand, table, score := in.stringField(FieldHand), in.stringField(FieldPlayedCards), in.stringField(FieldScore)
	if in.err != nil {
		return player.Snapshot{}, in.err
	}
	var err error
	if snapshot.Hand, err = parseHand(hand); err != nil {
		return player.Snapshot{}, err
	}
	if snapshot.Table, err = parseTable(table); err != nil {
		return player.Snapshot{}, err
	}
	if snapshot.Scores, err = parseScores(score); err != nil {
		return player.Snapshot{}, err
	}
	if err := checkRanges(snapshot); err != nil {
		return player.Snapshot{}, err
	}
	return snapshot, nil
}

// Apply decodes data and only then replaces dst. dst is left untouched when
// the packet is rejected.
func Apply(dst *player.State, data []byte) error {
	snapshot, err := DecodeSnapshot(data)
	if err != nil {
		return err
	}
	if err := dst.Restore(snapshot); err != nil {
		return formatErr("packet", "impossible state", err)
	}
	return nil
}

// fieldReader keeps the first error so the fields can be read in a row.
type fieldReader struct {
	fields map[string]jsoniter.RawMessage
	err    error
}

func (r *fieldReader) raw(field string) []byte {
	if r.err != nil {
		return nil
	}
	raw, ok := r.fields[field]
	if !ok {
		r.err = formatErr(field, "missing", nil)
		return nil
	}
	return bytes.TrimSpace(raw)
}

// intField accepts a bare base-10 integer only, so 1.5, 1e2 and "1" are rejected.
func (r *fieldReader) intField(field string) int {
	raw := r.raw(field)
	if r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(string(raw))
	if err != nil {
		r.err = formatErr(field, "not an integer", err)
		return 0
	}
	return v
}

func (r *fieldReader) stringField(field string) string {
	raw := r.raw(field)
	if r.err != nil {
		return ""
	}
	if len(raw) == 0 || raw[0] != '"' {
		r.err = formatErr(field, "not a string", nil)
		return ""
	}
	v := ""
	if err := json.Unmarshal(raw, &v); err != nil {
		r.err = formatErr(field, "not a string", err)
		return ""
	}
	return v
}
