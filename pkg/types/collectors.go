package types

type Layer_collectors interface {
	Update(lt LayerType, value float64)
	Flush() map[LayerType]float64
}
