package naming

// ResourceNames formats physical names for every resource kind. It holds no
// state beyond the four name components and never fails.
type ResourceNames struct {
	prefix  string
	env     string
	region  string
	account string
}

func New(prefix, envSuffix, region, account string) *ResourceNames {
	return &ResourceNames{
		prefix:  prefix,
		env:     envSuffix,
		region:  region,
		account: account,
	}
}

func (n *ResourceNames) Prefix() string    { return n.prefix }
func (n *ResourceNames) EnvSuffix() string { return n.env }
func (n *ResourceNames) Region() string    { return n.region }
func (n *ResourceNames) Account() string   { return n.account }

// Table: bebco-borrower-loans-dev
func (n *ResourceNames) Table(domain, name string) string {
	return n.prefix + "-" + domain + "-" + name + "-" + n.env
}

// Lambda: bebco-dev-payments-create
func (n *ResourceNames) Lambda(domain, action string) string {
	return n.prefix + "-" + n.env + "-" + domain + "-" + action
}

// Bucket names are global, so region and account are part of them.
func (n *ResourceNames) Bucket(purpose string) string {
	return n.prefix + "-" + purpose + "-" + n.env + "-" + n.region + "-" + n.account
}

func (n *ResourceNames) Queue(domain, purpose string) string {
	return n.prefix + "-" + n.env + "-" + domain + "-" + purpose
}

func (n *ResourceNames) QueueFifo(domain, purpose string) string {
	return n.Queue(domain, purpose) + ".fifo"
}

func (n *ResourceNames) Topic(purpose string) string {
	return n.prefix + "-" + n.env + "-" + purpose
}

func (n *ResourceNames) IAMRole(purpose string) string {
	return n.prefix + "-" + n.env + "-" + purpose
}

// APIGateway: bebco-borrowerapi-dev-api
func (n *ResourceNames) APIGateway(domain string) string {
	return n.prefix + "-" + domain + "-" + n.env + "-api"
}

func (n *ResourceNames) EventRule(purpose string) string {
	return n.prefix + "-" + n.env + "-" + purpose + "-rule"
}

// Alarm: bebco-dev-lambda-backup-function-errors
func (n *ResourceNames) Alarm(purpose string) string {
	return n.prefix + "-" + n.env + "-" + purpose
}

func (n *ResourceNames) Dashboard(purpose string) string {
	return n.prefix + "-" + n.env + "-" + purpose
}

func (n *ResourceNames) UserPool() string {
	return n.prefix + "-borrower-portal-" + n.env
}

func (n *ResourceNames) AppSyncAPI(apiName string) string {
	return n.prefix + "-" + apiName + "-" + n.env
}
