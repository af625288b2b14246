package intelligence

import (
	"context"
	"errors"
	"fmt"
	"time"

	serviceRepo "bookwise/database/repository/service"
	"bookwise/models"
	"bookwise/services/appointment"
	"bookwise/services/availability"
	"bookwise/services/customer"
	"bookwise/utils"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxToolRounds bounds how many tool-call round trips one user message may
// trigger before the assistant is forced to answer in text.
const maxToolRounds = 4

const systemInstruction = "You are a friendly booking assistant for a single local business. " +
	"You can list the services on offer, look up open appointment slots, book an appointment " +
	"for a customer, and move an existing appointment. Always confirm date, time and service " +
	"with the customer before booking. Times you receive and present are in the business's " +
	"local timezone. If a tool reports an error, apologize and relay what went wrong in plain words."

// AssistantService is the conversational booking interface.
type AssistantService interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	EndSession(ctx context.Context, sessionID string) error
}

// DefaultAssistantService implements AssistantService on top of Gemini
// function calling. The tools it exposes go through the same services the
// HTTP API uses, so every booking the assistant makes gets the same conflict
// re-check as one made by hand.
type DefaultAssistantService struct {
	Gemini       *GeminiClient
	CtxStore     *RedisContextStore
	Availability availability.AvailabilityService
	Appointments appointment.AppointmentService
	Customers    customer.CustomerService
	Services     serviceRepo.ServiceRepository
}

func (s *DefaultAssistantService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	logger := utils.GetLogger().Sugar()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	chatCtx, err := s.CtxStore.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load chat context: %w", err)
	}
	if chatCtx.BusinessID == "" {
		chatCtx.BusinessID = req.BusinessID
		if len(req.History) > 0 {
			chatCtx.History = req.History
		}
	} else if chatCtx.BusinessID != req.BusinessID {
		// Session IDs are client supplied; never let one tenant resume
		// another tenant's conversation.
		chatCtx = &models.ChatContext{BusinessID: req.BusinessID}
		sessionID = uuid.New().String()
	}

	model := s.Gemini.ToolModel(systemInstruction, toolDeclarations())
	session := model.StartChat()
	session.History = historyToContent(chatCtx.History)

	resp, err := session.SendMessage(ctx, genai.Text(req.Message))
	if err != nil {
		return nil, fmt.Errorf("assistant: %w", err)
	}

	for round := 0; round < maxToolRounds; round++ {
		call, ok := pendingCall(resp)
		if !ok {
			break
		}
		logger.Infow("Assistant tool call", "sessionID", sessionID, "tool", call.Name)
		result := s.runTool(ctx, req.BusinessID, call)
		resp, err = session.SendMessage(ctx, genai.FunctionResponse{Name: call.Name, Response: result})
		if err != nil {
			return nil, fmt.Errorf("assistant tool response: %w", err)
		}
	}

	reply := textOf(resp)
	chatCtx.History = append(chatCtx.History,
		models.ChatMessage{Role: "user", Content: req.Message},
		models.ChatMessage{Role: "assistant", Content: reply},
	)
	if err := s.CtxStore.Set(ctx, sessionID, chatCtx); err != nil {
		logger.Warnw("Failed to persist chat context", "sessionID", sessionID, zap.Error(err))
	}

	return &models.ChatResponse{SessionID: sessionID, Reply: reply}, nil
}

func (s *DefaultAssistantService) EndSession(ctx context.Context, sessionID string) error {
	return s.CtxStore.Clear(ctx, sessionID)
}

func pendingCall(resp *genai.GenerateContentResponse) (genai.FunctionCall, bool) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return genai.FunctionCall{}, false
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			return call, true
		}
	}
	return genai.FunctionCall{}, false
}

func historyToContent(history []models.ChatMessage) []*genai.Content {
	var contents []*genai.Content
	for _, msg := range history {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

func (s *DefaultAssistantService) runTool(ctx context.Context, businessID string, call genai.FunctionCall) map[string]any {
	var (
		result map[string]any
		err    error
	)
	switch call.Name {
	case "listServices":
		result, err = s.listServices(ctx, businessID)
	case "listAvailableSlots":
		result, err = s.listAvailableSlots(ctx, businessID, call.Args)
	case "createAppointment":
		result, err = s.createAppointment(ctx, businessID, call.Args)
	case "rescheduleAppointment":
		result, err = s.rescheduleAppointment(ctx, businessID, call.Args)
	default:
		err = fmt.Errorf("unknown tool %q", call.Name)
	}
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return result
}

func (s *DefaultAssistantService) listServices(ctx context.Context, businessID string) (map[string]any, error) {
	services, err := s.Services.ListActive(ctx, businessID)
	if err != nil {
		return nil, err
	}
	items := make([]map[string]any, 0, len(services))
	for _, svc := range services {
		items = append(items, map[string]any{
			"id":              svc.ID,
			"name":            svc.Name,
			"durationMinutes": svc.DurationMinutes,
			"priceCents":      svc.PriceCents,
		})
	}
	return map[string]any{"services": items}, nil
}

func (s *DefaultAssistantService) listAvailableSlots(ctx context.Context, businessID string, args map[string]any) (map[string]any, error) {
	serviceID, _ := args["serviceId"].(string)
	start, err := parseArgTime(args, "startDate")
	if err != nil {
		return nil, err
	}
	end, err := parseArgTime(args, "endDate")
	if err != nil {
		return nil, err
	}
	req := models.AvailabilityRequest{
		BusinessID: businessID,
		ServiceID:  serviceID,
		StartDate:  start,
		EndDate:    end,
	}
	if staffID, ok := args["staffId"].(string); ok && staffID != "" {
		req.StaffID = &staffID
	}

	slots, err := s.Availability.CalculateAvailability(ctx, req)
	if err != nil {
		return nil, err
	}
	// Cap what goes back into the prompt; the model only needs enough to
	// offer a few concrete options.
	const maxSlots = 20
	if len(slots) > maxSlots {
		slots = slots[:maxSlots]
	}
	items := make([]map[string]any, 0, len(slots))
	for _, slot := range slots {
		item := map[string]any{
			"start": slot.Start.Format(time.RFC3339),
			"end":   slot.End.Format(time.RFC3339),
		}
		if slot.StaffID != nil {
			item["staffId"] = *slot.StaffID
		}
		items = append(items, item)
	}
	return map[string]any{"slots": items}, nil
}

func (s *DefaultAssistantService) createAppointment(ctx context.Context, businessID string, args map[string]any) (map[string]any, error) {
	serviceID, _ := args["serviceId"].(string)
	email, _ := args["customerEmail"].(string)
	name, _ := args["customerName"].(string)
	start, err := parseArgTime(args, "start")
	if err != nil {
		return nil, err
	}

	svc, err := s.Services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil || svc.BusinessID != businessID {
		return nil, errors.New("service not found")
	}

	cust, err := s.Customers.GetOrCreateByEmail(ctx, businessID, email, name)
	if err != nil {
		return nil, err
	}

	input := appointment.CreateAppointmentInput{
		CustomerID: cust.ID,
		ServiceID:  serviceID,
		StartTime:  start,
		EndTime:    start.Add(time.Duration(svc.DurationMinutes) * time.Minute),
	}
	if staffID, ok := args["staffId"].(string); ok && staffID != "" {
		input.StaffID = &staffID
	}

	appt, err := s.Appointments.Create(ctx, businessID, input)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"appointmentId": appt.ID,
		"start":         appt.StartTime.Format(time.RFC3339),
		"end":           appt.EndTime.Format(time.RFC3339),
		"status":        appt.Status,
	}, nil
}

func (s *DefaultAssistantService) rescheduleAppointment(ctx context.Context, businessID string, args map[string]any) (map[string]any, error) {
	appointmentID, _ := args["appointmentId"].(string)
	start, err := parseArgTime(args, "start")
	if err != nil {
		return nil, err
	}

	appt, err := s.Appointments.GetByID(ctx, businessID, appointmentID)
	if err != nil {
		return nil, err
	}
	duration := appt.EndTime.Sub(appt.StartTime)

	updated, err := s.Appointments.Reschedule(ctx, businessID, appointmentID, start, start.Add(duration))
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"appointmentId": updated.ID,
		"start":         updated.StartTime.Format(time.RFC3339),
		"end":           updated.EndTime.Format(time.RFC3339),
		"status":        updated.Status,
	}, nil
}

func parseArgTime(args map[string]any, key string) (time.Time, error) {
	raw, _ := args[key].(string)
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing %s", key)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q", key, raw)
	}
	return t, nil
}

func toolDeclarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        "listServices",
			Description: "List the services this business offers, with duration and price.",
		},
		{
			Name:        "listAvailableSlots",
			Description: "Find open appointment slots for a service between two dates.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"serviceId": {Type: genai.TypeString, Description: "ID of the service to book"},
					"startDate": {Type: genai.TypeString, Description: "Window start, YYYY-MM-DD or RFC 3339"},
					"endDate":   {Type: genai.TypeString, Description: "Window end, YYYY-MM-DD or RFC 3339"},
					"staffId":   {Type: genai.TypeString, Description: "Optional staff member to restrict to"},
				},
				Required: []string{"serviceId", "startDate", "endDate"},
			},
		},
		{
			Name:        "createAppointment",
			Description: "Book an appointment for a customer at a specific start time.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"serviceId":     {Type: genai.TypeString, Description: "ID of the service to book"},
					"start":         {Type: genai.TypeString, Description: "Appointment start, RFC 3339"},
					"customerEmail": {Type: genai.TypeString, Description: "Customer email address"},
					"customerName":  {Type: genai.TypeString, Description: "Customer display name"},
					"staffId":       {Type: genai.TypeString, Description: "Optional staff member to book with"},
				},
				Required: []string{"serviceId", "start", "customerEmail"},
			},
		},
		{
			Name:        "rescheduleAppointment",
			Description: "Move an existing appointment to a new start time, keeping its duration.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"appointmentId": {Type: genai.TypeString, Description: "ID of the appointment to move"},
					"start":         {Type: genai.TypeString, Description: "New start time, RFC 3339"},
				},
				Required: []string{"appointmentId", "start"},
			},
		},
	}
}
