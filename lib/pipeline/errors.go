package pipeline

import "github.com/pkg/errors"

var (
	// ErrCandidateNotFound кандидат отсутствует на указанном этапе (или в воронке)
	ErrCandidateNotFound = errors.New("кандидат не найден")
	// ErrStageNotFound этап отсутствует в списке этапов воронки
	ErrStageNotFound = errors.New("этап подбора не найден")
	// ErrNoNextStage попытка перевести кандидата дальше последнего этапа
	ErrNoNextStage = errors.New("следующий этап подбора отсутствует")
	// ErrDuplicateCandidate кандидат указан более одного раза при построении воронки
	ErrDuplicateCandidate = errors.New("кандидат присутствует в воронке более одного раза")
	// ErrDuplicateStage идентификатор этапа повторяется при построении воронки
	ErrDuplicateStage = errors.New("этап подбора указан более одного раза")
)
