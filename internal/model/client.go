package model

import (
	"errors"
	"fmt"
)

// Predictor estimates how a given user would rate a given song.
type Predictor interface {
	Estimate(userID, songID string) (float64, error)
}

type ModelInferenceError struct {
	Msg string
}

func (e *ModelInferenceError) Error() string {
	return e.Msg
}

func IsModelInferenceError(err error) bool {
	var target *ModelInferenceError
	return errors.As(err, &target)
}

// Factors is the trained rating model artifact: a global mean plus
// per-entity biases and latent vectors. Loaded once, never mutated.
type Factors struct {
	GlobalMean  float64
	UserBias    map[string]float64
	ItemBias    map[string]float64
	UserFactors map[string][]float64
	ItemFactors map[string][]float64
}

type Client struct {
	f Factors
}

func NewClient(f Factors) *Client {
	return &Client{f: f}
}

// Estimate returns globalMean + userBias + itemBias + user·item.
// Unknown users or songs contribute nothing, so a cold estimate falls
// back to the global mean.
func (c *Client) Estimate(userID, songID string) (float64, error) {
	est := c.f.GlobalMean + c.f.UserBias[userID] + c.f.ItemBias[songID]

	uf, uok := c.f.UserFactors[userID]
	itf, iok := c.f.ItemFactors[songID]
	if uok && iok {
		if len(uf) != len(itf) {
			return 0, &ModelInferenceError{
				Msg: fmt.Sprintf("factor dimension mismatch for user %s and song %s", userID, songID),
			}
		}
		for i := range uf {
			est += uf[i] * itf[i]
		}
	}

	return est, nil
}
