package exploreapi

import (
	"errors"
	"net/http"
	"strconv"

	dmn "github.com/beka-birhanu/maze-walker/domain"
	"github.com/beka-birhanu/maze-walker/maze"
	"github.com/beka-birhanu/maze-walker/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExplorationController serves exploration runs and their replay frames.
type ExplorationController struct {
	explorer i.Explorer
}

// NewExplorationController initializes an ExplorationController.
func NewExplorationController(e i.Explorer) (*ExplorationController, error) {
	if e == nil {
		return nil, errors.New("exploration controller needs an explorer")
	}
	return &ExplorationController{
		explorer: e,
	}, nil
}

// RegisterPublic registers public routes.
func (ec *ExplorationController) RegisterPublic(route *gin.RouterGroup) {
	explorations := route.Group("/explorations")
	{
		explorations.GET("/:ID", ec.run)
		explorations.GET("/:ID/frames", ec.frames)
	}
}

// RegisterProtected registers protected routes.
func (ec *ExplorationController) RegisterProtected(route *gin.RouterGroup) {
	explorations := route.Group("/explorations")
	{
		explorations.POST("", ec.explore)
	}
}

// explore runs a new exploration and returns its record.
func (ec *ExplorationController) explore(ctx *gin.Context) {
	var request ExploreRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := ec.explorer.Explore(ctx.Request.Context(), request.toDomain())
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, run)
}

// run returns a stored exploration.
func (ec *ExplorationController) run(ctx *gin.Context) {
	ID, ok := parseID(ctx)
	if !ok {
		return
	}

	run, err := ec.explorer.Run(ID)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, run)
}

// frames drains replay frames of an exploration, oldest first.
func (ec *ExplorationController) frames(ctx *gin.Context) {
	ID, ok := parseID(ctx)
	if !ok {
		return
	}

	var amount int64
	if n := ctx.Query("n"); n != "" {
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive number"})
			return
		}
		amount = parsed
	}

	frames, err := ec.explorer.Frames(ctx.Request.Context(), ID, amount)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading frames"})
		return
	}
	if frames == nil {
		frames = []dmn.Frame{}
	}

	ctx.JSON(http.StatusOK, &FramesResponse{Frames: frames})
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return ID, true
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, dmn.ErrRunNotFound):
		return http.StatusNotFound
	case errors.Is(err, maze.ErrLoad),
		errors.Is(err, maze.ErrMissingAgent),
		errors.Is(err, maze.ErrInvalidOverride),
		errors.Is(err, maze.ErrRaggedGrid),
		errors.Is(err, maze.ErrOutOfBounds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
