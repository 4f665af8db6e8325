package types

type LayerType string

const (
	LAYER_CONV    LayerType = "CONV"
	LAYER_RELU    LayerType = "RELU"
	LAYER_POOL    LayerType = "POOL"
	LAYER_FC      LayerType = "FC"
	LAYER_SOFTMAX LayerType = "SOFTMAX"
)

// LayerTypes is the fixed order every report section follows.
var LayerTypes = []LayerType{
	LAYER_CONV,
	LAYER_RELU,
	LAYER_POOL,
	LAYER_FC,
	LAYER_SOFTMAX,
}

func (lt LayerType) Valid() bool {
	for _, t := range LayerTypes {
		if t == lt {
			return true
		}
	}
	return false
}

func (lt LayerType) String() string {
	return string(lt)
}
