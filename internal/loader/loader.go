// Package loader импортирует рестораны из текстового файла с разделителем "|".
//
// Формат строки:
//
//	external_places_id|general_score|name|internal_places_id|<не используется>|address[|...]
//
// Поля после address игнорируются.
package loader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dininghero/core/internal/model"
	"github.com/dininghero/core/internal/repository"
)

const (
	Separator = "|"
	MinFields = 6

	maxLineSize = 1 << 20
)

var (
	ErrTooFewFields = errors.New("too few fields")
	ErrInvalidScore = errors.New("invalid score")
)

// RecordError — ошибка одной записи с номером строки (с 1).
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// ParseLine разбирает одну строку в ресторан. Запись в БД не выполняется.
func ParseLine(line string) (*model.Restaurant, error) {
	fields := strings.Split(strings.TrimRight(line, " \t\r\n"), Separator)
	if len(fields) < MinFields {
		return nil, fmt.Errorf("%w: got %d, want at least %d", ErrTooFewFields, len(fields), MinFields)
	}

	raw := strings.TrimSpace(fields[1])
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScore, raw)
	}

	return &model.Restaurant{
		ExternalPlacesID: fields[0],
		GeneralScore:     score,
		Name:             fields[2],
		InternalPlacesID: fields[3],
		Address:          fields[5],
	}, nil
}

type Options struct {
	// Replace удаляет все рестораны перед загрузкой.
	Replace bool
	Logger  *log.Logger
}

type Result struct {
	Inserted int
	// Skipped — пустые строки; записями они не считаются.
	Skipped int
	Failed  []*RecordError
}

type Loader struct {
	restaurants repository.RestaurantRepository
	opts        Options
}

func New(restaurants repository.RestaurantRepository, opts Options) *Loader {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Loader{restaurants: restaurants, opts: opts}
}

// LoadFile открывает файл и передаёт его в Load.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return l.Load(ctx, f)
}

// Load вставляет по одной строке ресторанов на каждую корректную запись.
// Некорректные записи и записи, отклонённые БД, попадают в Result.Failed,
// остальные строки продолжают загружаться. Возвращаемая ошибка объединяет
// ошибки всех отклонённых записей; ошибки чтения и очистки прерывают загрузку.
func (l *Loader) Load(ctx context.Context, r io.Reader) (*Result, error) {
	if l.opts.Replace {
		n, err := l.restaurants.DeleteAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("delete restaurants: %w", err)
		}
		l.opts.Logger.Printf("deleted %d restaurants", n)
	}

	res := &Result{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			res.Skipped++
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		restaurant, err := ParseLine(line)
		if err == nil {
			err = l.restaurants.Create(ctx, restaurant)
		}
		if err != nil {
			recErr := &RecordError{Line: lineNo, Err: err}
			res.Failed = append(res.Failed, recErr)
			l.opts.Logger.Printf("skip record: %v", recErr)
			continue
		}
		res.Inserted++
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}

	l.opts.Logger.Printf("loaded %d restaurants, %d failed, %d blank lines skipped", res.Inserted, len(res.Failed), res.Skipped)

	if len(res.Failed) == 0 {
		return res, nil
	}
	errs := make([]error, 0, len(res.Failed))
	for _, f := range res.Failed {
		errs = append(errs, f)
	}
	return res, errors.Join(errs...)
}
