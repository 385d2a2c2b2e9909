package pkg

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// IDMap maps analyzed terms to dense integer ids and back.
type IDMap struct {
	StrToID    map[string]int
	IDToStr    map[int]string
	Vocabulary map[string]bool
	sync.Mutex
}

func NewIDMap() *IDMap {
	return &IDMap{
		StrToID:    make(map[string]int),
		IDToStr:    make(map[int]string),
		Vocabulary: make(map[string]bool),
	}
}

// GetID returns the id of str, assigning the next free id when str is new.
func (idMap *IDMap) GetID(str string) int {
	idMap.Lock()
	defer idMap.Unlock()
	if id, ok := idMap.StrToID[str]; ok {
		return id
	}

	id := len(idMap.StrToID)
	idMap.StrToID[str] = id
	idMap.IDToStr[id] = str

	return id
}

// Lookup is GetID without the insert.
func (idMap *IDMap) Lookup(str string) (int, bool) {
	idMap.Lock()
	defer idMap.Unlock()
	id, ok := idMap.StrToID[str]
	return id, ok
}

func (idMap *IDMap) GetStr(id int) string {
	idMap.Lock()
	defer idMap.Unlock()
	if str, ok := idMap.IDToStr[id]; ok {
		return str
	}
	return ""
}

func (idMap *IDMap) Len() int {
	idMap.Lock()
	defer idMap.Unlock()
	return len(idMap.StrToID)
}

func (idMap *IDMap) GetSortedTerms() []string {
	idMap.Lock()
	defer idMap.Unlock()
	sortedTerms := make([]string, 0, len(idMap.StrToID))
	for term := range idMap.StrToID {
		sortedTerms = append(sortedTerms, term)
	}
	sort.Strings(sortedTerms)
	return sortedTerms
}

func (idMap *IDMap) BuildVocabulary() {
	idMap.Lock()
	defer idMap.Unlock()
	idMap.Vocabulary = make(map[string]bool, len(idMap.StrToID))
	for term := range idMap.StrToID {
		idMap.Vocabulary[term] = true
	}
}

func (idMap *IDMap) GetVocabulary() map[string]bool {
	return idMap.Vocabulary
}

func (idMap *IDMap) IsInVocabulary(term string) bool {
	idMap.Lock()
	defer idMap.Unlock()
	_, ok := idMap.Vocabulary[term]
	return ok
}

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

// ErrorCode digs the code out of err, ErrInternalServerError when err carries none.
func ErrorCode(err error) error {
	var ierr *Error
	if errors.As(err, &ierr) && ierr.code != nil {
		return ierr.code
	}
	return ErrInternalServerError
}

var (
	ErrInternalServerError = errors.New("internal Server Error")
	ErrNotFound            = errors.New("your requested Item is not found")
	ErrConflict            = errors.New("your Item already exist")
	ErrBadParamInput       = errors.New("given Param is not valid")
)

var MessageInternalServerError string = "internal server error"
