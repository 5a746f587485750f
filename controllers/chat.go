package controllers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1/models/gemini-2.0-flash:generateContent"

// fallbackReply is the canned answer used whenever the upstream model
// declines, is blocked, or returns no usable text.
const fallbackReply = "Sorry, I couldn't find a clear answer. Please contact us at 071 125 0718."

// knowledgeBase is the fixed business-facts preamble prepended to every chat
// request, so the model answers only from company data.
const knowledgeBase = `You are a friendly, professional assistant for C R CAB Service (රෙන්ට් කාර් රන්න).
Your purpose is to provide accurate answers ONLY using the information supplied below.

COMPANY OVERVIEW
Company Name: C R CAB Service (රෙන්ට් කාර් රන්න)
Owner: Chamara Sampath
Business Type: Car rental & taxi service
Operating Hours: Open 24/7
Service Locations: Agunukolapelessa and Ranna, Sri Lanka

CONTACT INFORMATION
Main Phone: 071 125 0718
Alternative (Ranna Branch): 071 269 0428
Email: chamarasampath200@gmail.com
Always provide the main phone number (071 125 0718) whenever referring users to contact.

SERVICES PROVIDED
1. Car Rental - available with or without a driver, for short trips, long-distance travel, or daily hire.
2. Taxi Service - 24/7 availability for city rides, outstation trips and airport transfers.
3. Long-Distance Travel - any route across Sri Lanka.
4. Pickup & Drop-Off - customer location pickup available depending on area.
5. Airport Transfers - Bandaranaike International Airport (BIA) and Mattala Airport (HRI).

VEHICLE FLEET
Toyota Axio - hybrid sedan, seats 4, ideal for long-distance and city travel.
Toyota Prius - hybrid sedan, excellent fuel efficiency.
Suzuki WagonR - compact hatchback, economical, great for city rides.
Suzuki Alto - budget-friendly compact car for short trips and small groups.
Toyota KDH (Van) - large van with high seating capacity for group travel, tours and airport runs.
Land Rover Defender - high-clearance SUV for rough roads and hill-country routes.

BOOKING INFORMATION
Bookings are made by phone (071 125 0718), WhatsApp (direct users to call for
confirmation) or email (chamarasampath200@gmail.com). Customers may need to
provide pickup location, destination, date and time, number of passengers and
whether the trip is one-way or return.

POLICIES
Pricing, vehicle availability and scheduling are dynamic. If the user asks for
prices, availability, reserving a specific vehicle or exact pickup times, you
MUST politely tell them to call 071 125 0718 or email
chamarasampath200@gmail.com for accurate details.

ASSISTANT BEHAVIOR RULES
1. Stay friendly, professional and clear.
2. Only answer using the data in this knowledge base.
3. If a question is outside this information, politely say you can only answer based on the available company data.
4. Always direct customers to the main phone number (071 125 0718) for bookings, prices, or special requests.
5. Highlight 24/7 service when relevant.
6. Never invent prices, routes, or details not listed.

END OF KNOWLEDGE BASE`

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiPromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

type geminiError struct {
	Message string `json:"message"`
}

type geminiResponse struct {
	Candidates     []geminiCandidate     `json:"candidates"`
	PromptFeedback *geminiPromptFeedback `json:"promptFeedback,omitempty"`
	Error          *geminiError          `json:"error,omitempty"`
}

func geminiEndpoint() string {
	if url := os.Getenv("GEMINI_API_URL"); url != "" {
		return url
	}
	return defaultGeminiEndpoint
}

// extractReply pulls the answer text out of a Gemini response, falling back to
// the canned reply when the upstream errored, was blocked, or produced no text.
func extractReply(resp geminiResponse) string {
	if resp.Error != nil {
		return fallbackReply
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return fallbackReply
	}
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return fallbackReply
}

// Chat forwards one user message, prefixed with the knowledge base, to the
// Gemini completion API and relays the answer. Stateless: prior turns are
// never sent upstream.
func Chat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Invalid chat request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			log.Println("GEMINI_API_KEY not configured")
			http.Error(w, "Chat service not configured", http.StatusInternalServerError)
			return
		}

		fullPrompt := knowledgeBase + "\n\nUser Question: " + req.Message

		upstream := geminiRequest{
			Contents: []geminiContent{
				{Role: "user", Parts: []geminiPart{{Text: fullPrompt}}},
			},
		}
		upstream.GenerationConfig.Temperature = 0.2
		upstream.GenerationConfig.MaxOutputTokens = 512

		body, err := json.Marshal(upstream)
		if err != nil {
			log.Printf("Failed to encode Gemini request: %v", err)
			http.Error(w, "Chat request failed", http.StatusInternalServerError)
			return
		}

		upstreamReq, err := http.NewRequestWithContext(
			r.Context(), http.MethodPost, geminiEndpoint()+"?key="+apiKey, bytes.NewReader(body))
		if err != nil {
			log.Printf("Failed to build Gemini request: %v", err)
			http.Error(w, "Chat request failed", http.StatusInternalServerError)
			return
		}
		upstreamReq.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(upstreamReq)
		if err != nil {
			log.Printf("Gemini call failed: %v", err)
			http.Error(w, "Chat request failed", http.StatusInternalServerError)
			return
		}
		defer resp.Body.Close()

		var geminiResp geminiResponse
		if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
			log.Printf("Failed to decode Gemini response: %v", err)
			http.Error(w, "Chat request failed", http.StatusInternalServerError)
			return
		}

		if geminiResp.Error != nil {
			log.Printf("Gemini API error: %s", geminiResp.Error.Message)
		}
		if geminiResp.PromptFeedback != nil && geminiResp.PromptFeedback.BlockReason != "" {
			log.Printf("Gemini blocked prompt: %s", geminiResp.PromptFeedback.BlockReason)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{Reply: extractReply(geminiResp)})
	}
}
