//go:generate go tool mockgen -source=knowledge_controller.go -destination=knowledge_controller_mock_test.go -package=knowledge
package knowledge

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/url"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/aicruise/cruise-bot/internal/services/knowledgerepo"
	"github.com/aicruise/cruise-bot/internal/services/resolver"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/admin.html
var templatesFS embed.FS

type Store interface {
	Insert(ctx context.Context, question, answer string) error
	ListAll(ctx context.Context) ([]*knowledgerepo.Entry, error)
	Update(ctx context.Context, question, answer string) (int64, error)
	Delete(ctx context.Context, question string) (int64, error)
	Ping(ctx context.Context) error
}

type AnswerResolver interface {
	Resolve(ctx context.Context, text string) (resolver.Answer, error)
}

// KnowledgeController serves the knowledge base API and the admin panel.
type KnowledgeController struct {
	store   Store
	answers AnswerResolver
	panel   *template.Template
}

type panelData struct {
	Title   string
	Entries []*knowledgerepo.Entry
}

// NewKnowledgeController creates a new KnowledgeController.
func NewKnowledgeController(store Store, answers AnswerResolver) (*KnowledgeController, error) {
	panel, err := template.ParseFS(templatesFS, "templates/admin.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin template: %w", err)
	}
	return &KnowledgeController{
		store:   store,
		answers: answers,
		panel:   panel,
	}, nil
}

// Health godoc
// @Summary      Health probe
// @Tags         Service
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       / [get]
func (k *KnowledgeController) Health(c *fiber.Ctx) error {
	return c.JSON(StatusResponse{Status: healthStatus})
}

// TestDB godoc
// @Summary      Database connectivity check
// @Tags         Service
// @Produce      json
// @Success      200  {object}  DatabaseResponse
// @Failure      500  "Database is not reachable"
// @Router       /test-db [get]
func (k *KnowledgeController) TestDB(c *fiber.Ctx) error {
	if err := k.store.Ping(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(DatabaseResponse{Database: "connected"})
}

// AddQA godoc
// @Summary      Add a question and answer
// @Description  Appends a new entry. Duplicate questions are allowed.
// @Tags         Knowledge
// @Accept       json
// @Produce      json
// @Param        request  body      QAPair  true  "Entry to add"
// @Success      200      {object}  StatusResponse
// @Failure      400      "Invalid request payload"
// @Failure      500      "Internal server error"
// @Router       /add-qa [post]
func (k *KnowledgeController) AddQA(c *fiber.Ctx) error {
	pair, err := parseQAPair(c)
	if err != nil {
		return err
	}
	if err := k.store.Insert(c.UserContext(), pair.Question, pair.Answer); err != nil {
		return err
	}
	zerolog.Ctx(c.UserContext()).Info().Str("question", pair.Question).Msg("Knowledge entry added")
	return c.JSON(StatusResponse{Status: statusSaved})
}

// ListQA godoc
// @Summary      List all questions and answers
// @Tags         Knowledge
// @Produce      json
// @Success      200  {array}   QAPair
// @Failure      500  "Internal server error"
// @Router       /qa-list [get]
func (k *KnowledgeController) ListQA(c *fiber.Ctx) error {
	entries, err := k.store.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	pairs := make([]QAPair, 0, len(entries))
	for _, entry := range entries {
		pairs = append(pairs, QAPair{Question: entry.Question, Answer: entry.Answer})
	}
	return c.JSON(pairs)
}

// Ask godoc
// @Summary      Ask a question
// @Description  Returns the answer of the first stored question containing the text, case-insensitively, or a fallback text.
// @Tags         Knowledge
// @Accept       json
// @Produce      json
// @Param        request  body      AskRequest  true  "Question text"
// @Success      200      {object}  AskResponse
// @Failure      400      "Invalid request payload"
// @Failure      500      "Internal server error"
// @Router       /ask [post]
func (k *KnowledgeController) Ask(c *fiber.Ctx) error {
	var payload askPayload
	if err := c.BodyParser(&payload); err != nil {
		return invalidPayload(err)
	}
	if payload.Question == nil {
		return missingField("question")
	}
	answer, err := k.answers.Resolve(c.UserContext(), *payload.Question)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to resolve answer",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}
	return c.JSON(AskResponse{Answer: answer.Text})
}

// UpdateQA godoc
// @Summary      Update answers
// @Description  Replaces the answer of every entry whose question equals the given one exactly. Succeeds even when nothing matched.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request  body      QAPair  true  "Question and new answer"
// @Success      200      {object}  StatusResponse
// @Failure      400      "Invalid request payload"
// @Failure      401      "Unauthorized"
// @Failure      500      "Internal server error"
// @Security     BasicAuth
// @Router       /update-qa [put]
func (k *KnowledgeController) UpdateQA(c *fiber.Ctx) error {
	pair, err := parseQAPair(c)
	if err != nil {
		return err
	}
	updated, err := k.store.Update(c.UserContext(), pair.Question, pair.Answer)
	if err != nil {
		return err
	}
	zerolog.Ctx(c.UserContext()).Info().Str("question", pair.Question).Int64("rows", updated).Msg("Knowledge entries updated")
	return c.JSON(StatusResponse{Status: statusUpdated})
}

// DeleteQA godoc
// @Summary      Delete entries
// @Description  Deletes every entry whose question equals the path value exactly. Succeeds even when nothing matched.
// @Tags         Admin
// @Produce      json
// @Param        question  path      string  true  "Exact question, URL encoded"
// @Success      200       {object}  StatusResponse
// @Failure      400       "Invalid question"
// @Failure      401       "Unauthorized"
// @Failure      500       "Internal server error"
// @Security     BasicAuth
// @Router       /delete-qa/{question} [delete]
func (k *KnowledgeController) DeleteQA(c *fiber.Ctx) error {
	question, err := url.PathUnescape(c.Params("question"))
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid question",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	deleted, err := k.store.Delete(c.UserContext(), question)
	if err != nil {
		return err
	}
	zerolog.Ctx(c.UserContext()).Info().Str("question", question).Int64("rows", deleted).Msg("Knowledge entries deleted")
	return c.JSON(StatusResponse{Status: statusDeleted})
}

// AdminPanel godoc
// @Summary      Admin control panel
// @Tags         Admin
// @Produce      html
// @Success      200  "HTML page"
// @Failure      401  "Unauthorized"
// @Security     BasicAuth
// @Router       /admin [get]
func (k *KnowledgeController) AdminPanel(c *fiber.Ctx) error {
	entries, err := k.store.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := k.panel.Execute(&buf, panelData{Title: "AI Cruise Bot Admin", Entries: entries}); err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to render admin panel",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func parseQAPair(c *fiber.Ctx) (QAPair, error) {
	var payload qaPayload
	if err := c.BodyParser(&payload); err != nil {
		return QAPair{}, invalidPayload(err)
	}
	if payload.Question == nil {
		return QAPair{}, missingField("question")
	}
	if payload.Answer == nil {
		return QAPair{}, missingField("answer")
	}
	return QAPair{Question: *payload.Question, Answer: *payload.Answer}, nil
}

func invalidPayload(err error) error {
	return richerrors.Error{
		ExternalMsg: "Invalid request payload",
		Err:         err,
		Code:        fiber.StatusBadRequest,
	}
}

func missingField(name string) error {
	return richerrors.Error{
		ExternalMsg: name + " is required",
		Err:         fmt.Errorf("%w: missing %s", knowledgerepo.ValidationError, name),
		Code:        fiber.StatusBadRequest,
	}
}
