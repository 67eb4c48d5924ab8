// Package sqlite persists question list snapshots in a local sqlite file
// through bun. Snapshots are written all-or-nothing inside a transaction.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/migrate"

	"smartnus/internal/domain"
	sqlitemigrations "smartnus/internal/infra/sqlite/migrations"
)

// questionRow is the persisted form: storage identity, display position and
// the JSON-encoded question body.
type questionRow struct {
	bun.BaseModel `bun:"table:questions,alias:q"`

	ID       string `bun:"id,pk"`
	Position int    `bun:"position,notnull"`
	Data     string `bun:"data,notnull"`
}

type questionData struct {
	Kind       string       `json:"kind"`
	Name       string       `json:"name"`
	Importance int          `json:"importance"`
	Tags       []string     `json:"tags,omitempty"`
	Choices    []choiceData `json:"choices,omitempty"`
}

type choiceData struct {
	Title   string `json:"title"`
	Correct bool   `json:"correct"`
}

// Store reads and writes question list snapshots.
type Store struct {
	db  *bun.DB
	log zerolog.Logger
}

// Open creates the sqlite-backed store at path.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:%s?cache=shared", path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	return &Store{db: db, log: logger}, nil
}

// Migrate applies pending schema migrations.
func (s *Store) Migrate(ctx context.Context) error {
	migrator := migrate.NewMigrator(s.db, sqlitemigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	group, err := migrator.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if !group.IsZero() {
		s.log.Info().Str("group", group.String()).Msg("migrations applied")
	}
	return nil
}

// Load reads the stored snapshot into a question list, in display order.
func (s *Store) Load(ctx context.Context) (*domain.QuestionList, error) {
	var rows []questionRow
	if err := s.db.NewSelect().Model(&rows).Order("position ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	questions := make([]domain.Question, 0, len(rows))
	for _, row := range rows {
		q, err := decodeQuestion(row)
		if err != nil {
			return nil, fmt.Errorf("decode question %s: %w", row.ID, err)
		}
		questions = append(questions, q)
	}

	list := domain.NewQuestionList()
	if err := list.SetAll(questions); err != nil {
		return nil, fmt.Errorf("restore question list: %w", err)
	}
	s.log.Debug().Int("count", len(questions)).Msg("snapshot loaded")
	return list, nil
}

// Save replaces the stored snapshot with the list's current contents.
func (s *Store) Save(ctx context.Context, list *domain.QuestionList) error {
	questions := list.Questions()
	rows := make([]questionRow, 0, len(questions))
	for i, q := range questions {
		row, err := encodeQuestion(q, i)
		if err != nil {
			return fmt.Errorf("encode question %s: %w", q.Name(), err)
		}
		rows = append(rows, row)
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*questionRow)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		_, err := tx.NewInsert().Model(&rows).Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("save questions: %w", err)
	}
	s.log.Debug().Int("count", len(rows)).Msg("snapshot saved")
	return nil
}

// Close releases the underlying database handles.
func (s *Store) Close() error {
	return s.db.Close()
}

func encodeQuestion(q domain.Question, position int) (questionRow, error) {
	choices := q.Choices()
	data := questionData{
		Kind:       string(q.Kind()),
		Name:       q.Name().String(),
		Importance: q.Importance().Value(),
		Choices:    make([]choiceData, 0, len(choices)),
	}
	for _, tag := range q.Tags() {
		data.Tags = append(data.Tags, tag.Name())
	}
	for _, choice := range choices {
		data.Choices = append(data.Choices, choiceData{Title: choice.Title(), Correct: choice.IsCorrect()})
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return questionRow{}, err
	}
	return questionRow{
		ID:       q.ID().String(),
		Position: position,
		Data:     string(raw),
	}, nil
}

func decodeQuestion(row questionRow) (domain.Question, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, err
	}
	var data questionData
	if err := json.Unmarshal([]byte(row.Data), &data); err != nil {
		return nil, err
	}

	name, err := domain.NewName(data.Name)
	if err != nil {
		return nil, err
	}
	importance, err := domain.NewImportance(data.Importance)
	if err != nil {
		return nil, err
	}
	tags := make([]domain.Tag, 0, len(data.Tags))
	for _, raw := range data.Tags {
		tag, err := domain.NewTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	choices := make([]domain.Choice, 0, len(data.Choices))
	for _, raw := range data.Choices {
		choice, err := domain.NewChoice(raw.Title, raw.Correct)
		if err != nil {
			return nil, err
		}
		choices = append(choices, choice)
	}

	switch domain.Kind(data.Kind) {
	case domain.KindMultipleChoice:
		return domain.RestoreMultipleChoiceQuestion(id, name, importance, tags, choices)
	case domain.KindTrueFalse:
		return domain.RestoreTrueFalseQuestion(id, name, importance, tags, choices)
	case domain.KindShortAnswer:
		return domain.RestoreShortAnswerQuestion(id, name, importance, tags, choices)
	default:
		return nil, fmt.Errorf("unknown question kind %q", data.Kind)
	}
}
