package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/skillsync/internal/catalog"
	"github.com/spigell/skillsync/internal/matching"
)

const jobPosting = "We need a React developer with Node.js experience. MongoDB and AWS are a plus."

type jobResponse struct {
	Success     bool                      `json:"success"`
	Skills      []matching.ExtractedSkill `json:"skills"`
	TotalSkills int                       `json:"totalSkills"`
	Categories  matching.Categories       `json:"categories"`
}

type gapResponse struct {
	Success bool `json:"success"`
	matching.GapReport
}

func newTestServer(logger *zap.Logger) *Server {
	extractor, err := matching.NewExtractor(catalog.Default(), matching.ModeSubstring)
	Expect(err).NotTo(HaveOccurred())
	return NewServer(Config{ListenAddr: ":0"}, catalog.Default(), extractor, logger)
}

func doJSON(server *Server, method, path string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			data, err := json.Marshal(b)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(data)
		}
	}

	req, err := http.NewRequest(method, path, reader)
	Expect(err).NotTo(HaveOccurred())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.app.Test(req)
	Expect(err).NotTo(HaveOccurred())
	return resp
}

func decode(resp *http.Response, v any) {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	Expect(json.Unmarshal(data, v)).To(Succeed(), string(data))
}

var _ = Describe("Server", func() {
	var (
		server   *Server
		observed *observer.ObservedLogs
	)

	BeforeEach(func() {
		var core zapcore.Core
		core, observed = observer.New(zapcore.DebugLevel)
		server = newTestServer(zap.New(core))
	})

	Describe("GET /", func() {
		It("returns the health message", func() {
			resp := doJSON(server, http.MethodGet, "/", nil)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body map[string]string
			decode(resp, &body)
			Expect(body["message"]).To(Equal("SkillSync backend is running"))
		})
	})

	Describe("GET /ping", func() {
		It("returns pong", func() {
			resp := doJSON(server, http.MethodGet, "/ping", nil)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body string
			decode(resp, &body)
			Expect(body).To(Equal("pong"))
		})
	})

	Describe("request ids", func() {
		It("generates an id when none is supplied", func() {
			resp := doJSON(server, http.MethodGet, "/ping", nil)
			Expect(resp.Header.Get(requestIDHeader)).NotTo(BeEmpty())
		})

		It("echoes a supplied id", func() {
			req, err := http.NewRequest(http.MethodGet, "/ping", nil)
			Expect(err).NotTo(HaveOccurred())
			req.Header.Set(requestIDHeader, "abc-123")

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Header.Get(requestIDHeader)).To(Equal("abc-123"))
		})
	})

	Describe("POST /api/analysis/analyze-job", func() {
		It("extracts skills grouped by category", func() {
			resp := doJSON(server, http.MethodPost, "/api/analysis/analyze-job", map[string]string{
				"jobDescription": jobPosting,
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body jobResponse
			decode(resp, &body)
			Expect(body.Success).To(BeTrue())
			Expect(body.TotalSkills).To(Equal(4))
			Expect(body.Skills).To(HaveLen(4))
			Expect(body.Skills[0].Name).To(Equal("React"))
			Expect(body.Skills[0].Resources).To(ContainElement("React Official Docs"))
			Expect(body.Categories.Names()).To(Equal([]string{"Frontend", "Backend", "Database", "DevOps"}))
		})

		It("logs a summary of the analysis", func() {
			doJSON(server, http.MethodPost, "/api/analysis/analyze-job", map[string]string{
				"jobDescription": jobPosting,
			})

			entries := observed.FilterMessage("analyzed job description").All()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ContextMap()).To(HaveKeyWithValue("total_skills", int64(4)))
		})

		It("returns an empty result when nothing matches", func() {
			resp := doJSON(server, http.MethodPost, "/api/analysis/analyze-job", map[string]string{
				"jobDescription": "Looking for a friendly barista",
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body jobResponse
			decode(resp, &body)
			Expect(body.TotalSkills).To(Equal(0))
			Expect(body.Skills).To(BeEmpty())
			Expect(body.Categories).To(BeEmpty())
		})

		DescribeTable("rejects requests without a job description",
			func(body any) {
				resp := doJSON(server, http.MethodPost, "/api/analysis/analyze-job", body)
				Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))

				var apiErr APIError
				decode(resp, &apiErr)
				Expect(apiErr.Code).To(Equal(fiber.StatusBadRequest))
				Expect(apiErr.RequestID).NotTo(BeEmpty())
			},
			Entry("missing field", map[string]string{}),
			Entry("blank text", map[string]string{"jobDescription": "   \n"}),
			Entry("malformed json", "{not json"),
		)
	})

	Describe("POST /api/analysis/analyze-gap", func() {
		It("reports matched and missing skills", func() {
			extractor, err := matching.NewExtractor(catalog.Default(), matching.ModeSubstring)
			Expect(err).NotTo(HaveOccurred())

			resp := doJSON(server, http.MethodPost, "/api/analysis/analyze-gap", map[string]any{
				"requiredSkills": extractor.Extract(jobPosting),
				"userSkills": []matching.UserSkill{
					{Name: "React", Level: "Intermediate"},
					{Name: "AWS", Level: "Beginner"},
				},
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body gapResponse
			decode(resp, &body)
			Expect(body.Success).To(BeTrue())
			Expect(body.MatchPercentage).To(Equal(50))
			Expect(body.TotalRequired).To(Equal(4))
			Expect(body.TotalMatched).To(Equal(2))
			Expect(body.TotalMissing).To(Equal(2))
			Expect(body.MatchedSkills[0].UserLevel).To(Equal("Intermediate"))
			Expect(body.MatchedSkills[0].Match).To(Equal(matching.MatchStrong))
			Expect(body.MissingSkills[0].Name).To(Equal("Node.js"))
			Expect(body.MissingSkills[1].Name).To(Equal("MongoDB"))
			Expect(body.MissingSkills[1].Match).To(Equal(matching.MatchMissing))
		})

		It("accepts required skills that did not come from extraction", func() {
			resp := doJSON(server, http.MethodPost, "/api/analysis/analyze-gap", map[string]any{
				"requiredSkills": []map[string]any{{"name": "Haskell", "category": "Backend"}},
				"userSkills":     []map[string]string{{"name": "Haskell"}},
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body gapResponse
			decode(resp, &body)
			Expect(body.MatchPercentage).To(Equal(100))
		})

		It("uses camelCase field names", func() {
			resp := doJSON(server, http.MethodPost, "/api/analysis/analyze-gap", map[string]any{
				"requiredSkills": []map[string]any{{"name": "Git", "category": "Tools", "level": "Beginner"}},
				"userSkills":     []map[string]string{},
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body map[string]any
			decode(resp, &body)
			Expect(body).To(HaveKey("matchedSkills"))
			Expect(body).To(HaveKey("missingSkills"))
			Expect(body).To(HaveKeyWithValue("matchPercentage", BeNumerically("==", 0)))
			Expect(body["matchedSkills"]).To(BeEmpty())
		})

		It("rejects an empty required list", func() {
			resp := doJSON(server, http.MethodPost, "/api/analysis/analyze-gap", map[string]any{
				"requiredSkills": []any{},
				"userSkills":     []matching.UserSkill{{Name: "React"}},
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))

			var apiErr APIError
			decode(resp, &apiErr)
			Expect(apiErr.Detail).To(ContainSubstring("required skills are empty"))
		})

		It("rejects a malformed body", func() {
			resp := doJSON(server, http.MethodPost, "/api/analysis/analyze-gap", `{"requiredSkills": "React"}`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})

		It("logs client errors as warnings", func() {
			doJSON(server, http.MethodPost, "/api/analysis/analyze-gap", map[string]any{})

			entries := observed.FilterMessage("request failed with client error").All()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ContextMap()).To(HaveKeyWithValue("status", int64(fiber.StatusBadRequest)))
		})
	})

	Describe("GET /api/catalog", func() {
		It("lists every skill", func() {
			resp := doJSON(server, http.MethodGet, "/api/catalog", nil)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body CatalogResponse
			decode(resp, &body)
			Expect(body.Total).To(Equal(catalog.Default().Len()))
			Expect(body.Skills).To(HaveLen(body.Total))
			Expect(body.Categories).To(ContainElement("Methodology"))
		})

		It("filters by category", func() {
			resp := doJSON(server, http.MethodGet, "/api/catalog?category=database", nil)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body CatalogResponse
			decode(resp, &body)
			Expect(body.Total).To(Equal(4))
			for _, def := range body.Skills {
				Expect(def.Category).To(Equal("Database"))
			}
		})
	})

	Describe("GET /api/catalog/:name", func() {
		It("returns a single skill", func() {
			resp := doJSON(server, http.MethodGet, "/api/catalog/Spring%20Boot", nil)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var def catalog.Definition
			decode(resp, &def)
			Expect(def.Name).To(Equal("Spring Boot"))
			Expect(def.Level).To(Equal(catalog.Advanced))
		})

		It("returns 404 for unknown skills", func() {
			resp := doJSON(server, http.MethodGet, "/api/catalog/Cobol", nil)
			Expect(resp.StatusCode).To(Equal(fiber.StatusNotFound))

			var apiErr APIError
			decode(resp, &apiErr)
			Expect(apiErr.Message).To(Equal("Not Found"))
		})
	})

	It("returns a JSON 404 for unknown routes", func() {
		resp := doJSON(server, http.MethodGet, "/nope", nil)
		Expect(resp.StatusCode).To(Equal(fiber.StatusNotFound))

		var apiErr APIError
		decode(resp, &apiErr)
		Expect(apiErr.Code).To(Equal(fiber.StatusNotFound))
	})
})
