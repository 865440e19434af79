package store

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/base64"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/crypto"
)

type Suite struct {
	suite.Suite
	DB     *gorm.DB
	mock   sqlmock.Sqlmock
	cipher *crypto.FernetBytes
}

func (s *Suite) SetupSuite() {
	var (
		db  *sql.DB
		err error
	)

	db, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	s.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(s.T(), err)

	key, err := base64.StdEncoding.DecodeString("6QrDHLBWYXieY5FM5DlRWRXX/wA8hefCuwMciHQ5ms0=")
	require.NoError(s.T(), err)
	signer, err := crypto.NewFernetSigner(key, 0)
	require.NoError(s.T(), err)
	s.cipher, err = crypto.NewFernetBytes(key, signer)
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.DB.Use(NewPlugin(WithCipher(s.cipher))))
}

func (s *Suite) AfterTest(_, _ string) {
	require.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func TestFernetDBPlugin(t *testing.T) {
	suite.Run(t, new(Suite))
}

type EncryptedEntry struct {
	ID      uint64 `json:"id" gorm:"primary_key"`
	Name    string
	Value   []byte `fernet:"encrypted"`
	TTL     int64  `fernet:"ttl"`
	Expired bool   `gorm:"-" fernet:"expired"`
}

type EncryptedText struct {
	ID    uint64 `json:"id" gorm:"primary_key"`
	Value string `fernet:"encrypted"`
}

type PlainEntry struct {
	ID    uint64 `json:"id" gorm:"primary_key"`
	Value []byte
}

// ciphertextArgument verifies that the written value does not contain
// the plaintext. There isn't really a good way to verify the exact
// token, the IV is random.
type ciphertextArgument struct{}

func (ciphertextArgument) Match(v driver.Value) bool {
	b, ok := v.([]byte)
	return ok && !bytes.Contains(b, []byte("s3cr3t"))
}

// textTokenArgument verifies that a string column gets a URL-safe
// base64 fernet token rather than the plaintext.
type textTokenArgument struct{}

func (textTokenArgument) Match(v driver.Value) bool {
	str, ok := v.(string)
	return ok && strings.HasPrefix(str, "gAAAAA") && !strings.Contains(str, "s3cr3t")
}

func (s *Suite) TestReadEncrypted() {
	token, err := s.cipher.Encrypt([]byte("s3cr3t value"))
	require.NoError(s.T(), err)

	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "encrypted_entries" ORDER BY "encrypted_entries"."id" LIMIT 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "value", "ttl"}).
			AddRow(1, "db-password", token, 0))

	var record EncryptedEntry
	require.NoError(s.T(), s.DB.First(&record).Error)
	assert.Equal(s.T(), []byte("s3cr3t value"), record.Value)
	assert.False(s.T(), record.Expired)
}

func (s *Suite) TestReadExpired() {
	// An authentic token stamped far in the past, on a row with a 10
	// second ttl. The value is zeroed and flagged, not an error.
	token, err := s.cipher.EncryptAtTime([]byte("s3cr3t value"), time.Unix(123456789, 0))
	require.NoError(s.T(), err)

	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "encrypted_entries" ORDER BY "encrypted_entries"."id" LIMIT 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "value", "ttl"}).
			AddRow(1, "db-password", token, 10))

	var record EncryptedEntry
	require.NoError(s.T(), s.DB.First(&record).Error)
	assert.Nil(s.T(), record.Value)
	assert.True(s.T(), record.Expired)
}

func (s *Suite) TestReadTampered() {
	token, err := s.cipher.Encrypt([]byte("s3cr3t value"))
	require.NoError(s.T(), err)
	token[len(token)-1] ^= 0xff

	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "encrypted_entries" ORDER BY "encrypted_entries"."id" LIMIT 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "value", "ttl"}).
			AddRow(1, "db-password", token, 0))

	var record EncryptedEntry
	err = s.DB.First(&record).Error
	assert.ErrorIs(s.T(), err, crypto.ErrBadSignature)
}

func (s *Suite) TestReadStringToken() {
	token, err := s.cipher.Encrypt([]byte("s3cr3t value"))
	require.NoError(s.T(), err)

	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "encrypted_texts" ORDER BY "encrypted_texts"."id" LIMIT 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "value"}).
			AddRow(1, base64.URLEncoding.EncodeToString(token)))

	var record EncryptedText
	require.NoError(s.T(), s.DB.First(&record).Error)
	assert.Equal(s.T(), "s3cr3t value", record.Value)
}

func (s *Suite) TestReadPlain() {
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "plain_entries" ORDER BY "plain_entries"."id" LIMIT 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "value"}).
			AddRow(1, []byte("plain value")))

	var record PlainEntry
	require.NoError(s.T(), s.DB.First(&record).Error)
	assert.Equal(s.T(), []byte("plain value"), record.Value)
}

func (s *Suite) TestFindDecryptsAllRows() {
	token1, err := s.cipher.Encrypt([]byte("s3cr3t one"))
	require.NoError(s.T(), err)
	token2, err := s.cipher.Encrypt([]byte("s3cr3t two"))
	require.NoError(s.T(), err)

	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "encrypted_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "value", "ttl"}).
			AddRow(1, "one", token1, 0).
			AddRow(2, "two", token2, 0))

	var records []EncryptedEntry
	require.NoError(s.T(), s.DB.Find(&records).Error)
	require.Len(s.T(), records, 2)
	assert.Equal(s.T(), []byte("s3cr3t one"), records[0].Value)
	assert.Equal(s.T(), []byte("s3cr3t two"), records[1].Value)
}

func (s *Suite) TestWriteEncrypted() {
	record := EncryptedEntry{
		Name:  "db-password",
		Value: []byte("s3cr3t value"),
		TTL:   60,
	}

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO "encrypted_entries" ("name","value","ttl") VALUES ($1,$2,$3) RETURNING "id"`)).
		WithArgs("db-password", ciphertextArgument{}, int64(60)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	s.mock.ExpectCommit()

	require.NoError(s.T(), s.DB.Create(&record).Error)
	// the model keeps the plaintext after the write
	assert.Equal(s.T(), []byte("s3cr3t value"), record.Value)
	assert.Equal(s.T(), uint64(1), record.ID)
}

func (s *Suite) TestWriteStringToken() {
	record := EncryptedText{Value: "s3cr3t value"}

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO "encrypted_texts" ("value") VALUES ($1) RETURNING "id"`)).
		WithArgs(textTokenArgument{}).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	s.mock.ExpectCommit()

	require.NoError(s.T(), s.DB.Create(&record).Error)
	assert.Equal(s.T(), "s3cr3t value", record.Value)
}

func (s *Suite) TestUpdateEncrypted() {
	record := EncryptedEntry{
		ID:    1,
		Name:  "db-password",
		Value: []byte("s3cr3t value"),
		TTL:   60,
	}

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "encrypted_entries" SET "name"=$1,"value"=$2,"ttl"=$3 WHERE "id" = $4`)).
		WithArgs("db-password", ciphertextArgument{}, int64(60), 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	s.mock.ExpectCommit()

	result := s.DB.Save(&record)
	assert.Equal(s.T(), int64(1), result.RowsAffected)
	assert.Nil(s.T(), result.Error)
}

func TestPluginRequiresCipher(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	assert.Error(t, gdb.Use(NewPlugin()))
}
