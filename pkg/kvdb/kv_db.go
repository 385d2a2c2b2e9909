package kvdb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/lintang-b-s/ir-lab/pkg"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	"github.com/vmihailenco/msgpack/v5"

	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists   = errors.New("key not exists")
	ErrInvalidLearnerID  = errors.New("learner id must be a uuid")
	ErrCorruptedDocument = errors.New("corrupted document record")
)

const (
	BBOLTDB_DOCUMENT_BUCKET = "documents"
	BBOLTDB_PROGRESS_BUCKET = "progress"

	PROGRESS_KEY    = "ir-learning-progress"
	READ_KEY_PREFIX = "read-"
)

type KVDB struct {
	db *bbolt.DB
	sync.Mutex
}

// NewKVDB wraps db and makes sure the buckets exist.
func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range []string{BBOLTDB_DOCUMENT_BUCKET, BBOLTDB_PROGRESS_BUCKET} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("error when creating bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &KVDB{db: db}, nil
}

func (db *KVDB) Close() error {
	return db.db.Close()
}

// SaveDocs stores documents in one batched transaction.
func (db *KVDB) SaveDocs(docs []datastructure.Document) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Batch(func(tx *bbolt.Tx) error {
		for _, doc := range docs {
			err := db.Set(doc, tx)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceDocs drops every stored document and stores docs in the same
// transaction, so ids of a previous corpus do not survive.
func (db *KVDB) ReplaceDocs(docs []datastructure.Document) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(BBOLTDB_DOCUMENT_BUCKET)); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		if _, err := tx.CreateBucket([]byte(BBOLTDB_DOCUMENT_BUCKET)); err != nil {
			return err
		}
		for _, doc := range docs {
			if err := db.Set(doc, tx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *KVDB) Set(doc datastructure.Document, tx *bbolt.Tx) error {
	b := tx.Bucket([]byte(BBOLTDB_DOCUMENT_BUCKET))
	return b.Put([]byte(strconv.Itoa(doc.ID)), serializeDocument(doc))
}

func (db *KVDB) GetDoc(id int) (doc datastructure.Document, err error) {
	viewErr := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_DOCUMENT_BUCKET))
		docBytes := b.Get([]byte(strconv.Itoa(id)))
		if docBytes == nil {
			err = pkg.WrapErrorf(ErrorsKeyNotExists, pkg.ErrNotFound, "document with docID: %d not found", id)
			return nil
		}
		doc, err = deserializeDocument(docBytes)
		return nil
	})
	if viewErr != nil {
		return datastructure.Document{}, viewErr
	}
	return
}

// GetAllDocs returns every stored document ordered by id.
func (db *KVDB) GetAllDocs() ([]datastructure.Document, error) {
	docs := []datastructure.Document{}
	err := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_DOCUMENT_BUCKET))
		return b.ForEach(func(_, v []byte) error {
			doc, err := deserializeDocument(v)
			if err != nil {
				return err
			}
			docs = append(docs, doc)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

// NewLearnerID returns a fresh random learner id.
func NewLearnerID() string {
	return uuid.NewString()
}

func validateLearnerID(learnerID string) error {
	if _, err := uuid.Parse(learnerID); err != nil {
		return pkg.WrapErrorf(ErrInvalidLearnerID, pkg.ErrBadParamInput, "learner %q", learnerID)
	}
	return nil
}

// LoadCompleted returns the completed node ids of a learner, empty for a new one.
func (db *KVDB) LoadCompleted(learnerID string) ([]string, error) {
	if err := validateLearnerID(learnerID); err != nil {
		return nil, err
	}

	completed := []string{}
	err := db.db.View(func(tx *bbolt.Tx) error {
		learner := tx.Bucket([]byte(BBOLTDB_PROGRESS_BUCKET)).Bucket([]byte(learnerID))
		if learner == nil {
			return nil
		}
		raw := learner.Get([]byte(PROGRESS_KEY))
		if raw == nil {
			return nil
		}
		return msgpack.Unmarshal(raw, &completed)
	})
	if err != nil {
		return nil, fmt.Errorf("error when loading progress of %s: %w", learnerID, err)
	}
	return completed, nil
}

func (db *KVDB) SaveCompleted(learnerID string, completed []string) error {
	if err := validateLearnerID(learnerID); err != nil {
		return err
	}
	raw, err := msgpack.Marshal(completed)
	if err != nil {
		return fmt.Errorf("error when marshalling progress: %w", err)
	}
	return db.putLearnerKey(learnerID, PROGRESS_KEY, raw)
}

func (db *KVDB) MarkRead(learnerID, topicID string, read bool) error {
	if err := validateLearnerID(learnerID); err != nil {
		return err
	}
	return db.putLearnerKey(learnerID, READ_KEY_PREFIX+topicID, []byte(strconv.FormatBool(read)))
}

func (db *KVDB) IsRead(learnerID, topicID string) (read bool, err error) {
	if err := validateLearnerID(learnerID); err != nil {
		return false, err
	}
	viewErr := db.db.View(func(tx *bbolt.Tx) error {
		learner := tx.Bucket([]byte(BBOLTDB_PROGRESS_BUCKET)).Bucket([]byte(learnerID))
		if learner == nil {
			return nil
		}
		raw := learner.Get([]byte(READ_KEY_PREFIX + topicID))
		if raw == nil {
			return nil
		}
		read, err = strconv.ParseBool(string(raw))
		return nil
	})
	if viewErr != nil {
		return false, viewErr
	}
	return
}

func (db *KVDB) putLearnerKey(learnerID, key string, value []byte) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Update(func(tx *bbolt.Tx) error {
		learner, err := tx.Bucket([]byte(BBOLTDB_PROGRESS_BUCKET)).CreateBucketIfNotExists([]byte(learnerID))
		if err != nil {
			return err
		}
		return learner.Put([]byte(key), value)
	})
}

func GetInt(bb *bytes.Buffer, offset int) int {
	return int(binary.LittleEndian.Uint32(bb.Bytes()[offset:]))
}

// PutInt. set int ke byte array page di posisi = offset.
func PutInt(bb *bytes.Buffer, offset int, val int) {
	binary.LittleEndian.PutUint32(bb.Bytes()[offset:], uint32(val))
}

// GetBytes reads a length prefixed byte slice at offset.
func GetBytes(bb *bytes.Buffer, offset int) []byte {
	length := GetInt(bb, offset)
	b := make([]byte, length)
	copy(b, bb.Bytes()[offset+4:offset+4+length])
	return b
}

func PutBytes(bb *bytes.Buffer, offset int, b []byte) {
	PutInt(bb, offset, len(b))
	copy(bb.Bytes()[offset+4:], b)
}

func GetString(bb *bytes.Buffer, offset int) string {
	return string(GetBytes(bb, offset))
}

func PutString(bb *bytes.Buffer, offset int, s string) int {
	PutBytes(bb, offset, []byte(s))
	return len([]byte(s))
}

// GetDocSize is the record size: id, length, then four length prefixed strings.
func GetDocSize(doc datastructure.Document) int {
	return 4 + 4 + 4 + len(doc.Title) + 4 + len(doc.Abstract) + 4 + len(doc.Body) +
		4 + len(doc.References)
}

func serializeDocument(doc datastructure.Document) []byte {
	bb := bytes.NewBuffer(make([]byte, GetDocSize(doc)))

	leftPos := 0

	PutInt(bb, leftPos, doc.ID)
	leftPos += 4

	PutInt(bb, leftPos, doc.Length)
	leftPos += 4

	for _, field := range []string{doc.Title, doc.Abstract, doc.Body, doc.References} {
		stringLen := PutString(bb, leftPos, field)
		leftPos += stringLen + 4
	}

	return bb.Bytes()
}

func deserializeDocument(buf []byte) (datastructure.Document, error) {
	if len(buf) < 8+4*4 {
		return datastructure.Document{}, ErrCorruptedDocument
	}
	bb := bytes.NewBuffer(buf)
	doc := datastructure.Document{}
	leftPos := 0

	doc.ID = GetInt(bb, leftPos)
	leftPos += 4

	doc.Length = GetInt(bb, leftPos)
	leftPos += 4

	fields := []*string{&doc.Title, &doc.Abstract, &doc.Body, &doc.References}
	for _, field := range fields {
		if leftPos+4 > len(buf) || leftPos+4+GetInt(bb, leftPos) > len(buf) {
			return datastructure.Document{}, ErrCorruptedDocument
		}
		*field = GetString(bb, leftPos)
		leftPos += len(*field) + 4
	}

	return doc, nil
}
