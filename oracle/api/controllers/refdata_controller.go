package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	apiCore "github.com/refdata/ref-oracle/api/core"
	"github.com/refdata/ref-oracle/api/utils"
	"github.com/refdata/ref-oracle/oracle/api/model/request"
	"github.com/refdata/ref-oracle/oracle/api/model/response"
	"github.com/refdata/ref-oracle/oracle/core"
	"github.com/refdata/ref-oracle/telemetry"
)

type RefDataControllerImpl struct {
	db             core.RefStoreDB
	resolver       core.RefResolver
	relayProcessor core.RelayProcessor
	logger         hclog.Logger
}

var _ apiCore.APIController = (*RefDataControllerImpl)(nil)

func NewRefDataController(
	db core.RefStoreDB,
	resolver core.RefResolver,
	relayProcessor core.RelayProcessor,
	logger hclog.Logger,
) *RefDataControllerImpl {
	return &RefDataControllerImpl{
		db:             db,
		resolver:       resolver,
		relayProcessor: relayProcessor,
		logger:         logger,
	}
}

func (*RefDataControllerImpl) GetPathPrefix() string {
	return "RefData"
}

func (c *RefDataControllerImpl) GetEndpoints() []*apiCore.APIEndpoint {
	return []*apiCore.APIEndpoint{
		{Path: "Relay", Method: http.MethodPost, Handler: c.relay, APIKeyAuth: true},
		{Path: "GetRefs", Method: http.MethodGet, Handler: c.getRefs},
		{Path: "GetReferenceData", Method: http.MethodGet, Handler: c.getReferenceData},
	}
}

func (c *RefDataControllerImpl) relay(w http.ResponseWriter, r *http.Request) {
	requestBody, ok := utils.DecodeModel[request.RelayRequest](w, r, c.logger)
	if !ok {
		return
	}

	c.logger.Debug("relay called", "url", r.URL, "symbols", len(requestBody.Symbols))

	err := c.relayProcessor.Relay(
		requestBody.Relayer, requestBody.Symbols, requestBody.Rates,
		requestBody.ResolveTimes, requestBody.RequestIDs)
	if err != nil {
		utils.WriteErrorResponse(w, r, http.StatusBadRequest, err, c.logger)

		return
	}

	utils.WriteResponse(w, r, http.StatusOK,
		response.RelayResponse{SymbolsUpdated: len(requestBody.Symbols)}, c.logger)
}

func (c *RefDataControllerImpl) getRefs(w http.ResponseWriter, r *http.Request) {
	c.logger.Debug("getRefs called", "url", r.URL)

	refs, err := c.db.GetAllRefs()
	if err != nil {
		utils.WriteErrorResponse(w, r, http.StatusInternalServerError, err, c.logger)

		return
	}

	utils.WriteResponse(w, r, http.StatusOK, response.NewRefsResponse(refs), c.logger)
}

func (c *RefDataControllerImpl) getReferenceData(w http.ResponseWriter, r *http.Request) {
	c.logger.Debug("getReferenceData called", "url", r.URL)

	queryValues := r.URL.Query()

	base := queryValues.Get("base")
	quote := queryValues.Get("quote")

	if base == "" || quote == "" {
		utils.WriteErrorResponse(w, r, http.StatusBadRequest,
			fmt.Errorf("base and quote missing from query"), c.logger)

		return
	}

	currentTime := uint64(time.Now().UnixNano())

	refData, err := c.resolver.GetReferenceData(base, quote, currentTime)
	if err != nil {
		telemetry.UpdateReferenceDataQueryFailedCounter(base, quote)

		utils.WriteErrorResponse(w, r, http.StatusBadRequest, err, c.logger)

		return
	}

	telemetry.UpdateReferenceDataQueryCounter(base, quote)

	utils.WriteResponse(w, r, http.StatusOK, response.NewReferenceDataResponse(refData), c.logger)
}
