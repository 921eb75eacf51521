package tensor

// mockBackend satisfies Backend without doing real math. Tensor creation
// and metadata tests only need Device().
type mockBackend struct{}

func newMockBackend() *mockBackend { return &mockBackend{} }

func (m *mockBackend) Add(a, b *RawTensor) *RawTensor { return a }
func (m *mockBackend) Sub(a, b *RawTensor) *RawTensor { return a }
func (m *mockBackend) Mul(a, b *RawTensor) *RawTensor { return a }
func (m *mockBackend) Div(a, b *RawTensor) *RawTensor { return a }

func (m *mockBackend) MatMul(a, b *RawTensor) *RawTensor { return a }

func (m *mockBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor { return t }
func (m *mockBackend) Transpose(t *RawTensor, axes ...int) *RawTensor  { return t }

func (m *mockBackend) MulScalar(x *RawTensor, scalar any) *RawTensor { return x }
func (m *mockBackend) AddScalar(x *RawTensor, scalar any) *RawTensor { return x }

func (m *mockBackend) Sum(x *RawTensor) *RawTensor  { return x }
func (m *mockBackend) Mean(x *RawTensor) *RawTensor { return x }

func (m *mockBackend) Name() string   { return "Mock" }
func (m *mockBackend) Device() Device { return CPU }

var _ Backend = (*mockBackend)(nil)
