package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/smallbiznis/leadflow/internal/invoice/domain"
	obscontext "github.com/smallbiznis/leadflow/internal/observability/context"
)

type generateInvoiceRequest struct {
	ClientName  string          `json:"clientName"`
	ClientEmail string          `json:"clientEmail"`
	Items       json.RawMessage `json:"items"`
	SendEmail   any             `json:"sendEmail"`
}

func (s *Server) GenerateInvoice(c *gin.Context) {
	var req generateInvoiceRequest
	if err := decodeJSON(c, &req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	items, err := decodeRawItems(req.Items)
	if err != nil {
		AbortWithError(c, invoicedomain.ErrInvalidItems)
		return
	}

	result, err := s.invoiceSvc.Generate(c.Request.Context(), invoicedomain.GenerateInvoiceRequest{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Items:       items,
		SendEmail:   truthy(req.SendEmail),
	})
	if err != nil {
		AbortWithError(c, operationFailed(msgInvoiceFailed, err))
		return
	}

	c.Set(obscontext.KeyInvoiceID, result.Invoice.ID)
	c.Set(obscontext.KeyEmailSent, result.Dispatched)
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Header("X-Invoice-Id", result.Invoice.ID)
	c.Header("X-Email-Sent", strconv.FormatBool(result.Dispatched))
	c.Data(http.StatusOK, "application/pdf", result.Document)
}

func (s *Server) GetInvoiceTemplate(c *gin.Context) {
	template := s.invoiceSvc.Template(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"template": template,
	})
}

// decodeRawItems requires a JSON array. Elements that are not objects
// become empty items and are defaulted during normalization.
func decodeRawItems(raw json.RawMessage) ([]invoicedomain.RawLineItem, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, invoicedomain.ErrInvalidItems
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, invoicedomain.ErrInvalidItems
	}

	items := make([]invoicedomain.RawLineItem, 0, len(elems))
	for _, elem := range elems {
		var fields map[string]any
		dec := json.NewDecoder(bytes.NewReader(elem))
		dec.UseNumber()
		if err := dec.Decode(&fields); err != nil || fields == nil {
			items = append(items, invoicedomain.RawLineItem{})
			continue
		}
		items = append(items, invoicedomain.RawLineItem{
			Description: fields["description"],
			Quantity:    fields["quantity"],
			Price:       fields["price"],
		})
	}
	return items, nil
}

func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		val = strings.TrimSpace(strings.ToLower(val))
		return val != "" && val != "false" && val != "0"
	case float64:
		return val != 0
	case json.Number:
		f, err := val.Float64()
		return err == nil && f != 0
	default:
		return false
	}
}

func decodeJSON(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	return dec.Decode(dst)
}
