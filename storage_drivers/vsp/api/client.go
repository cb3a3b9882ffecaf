// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package api provides a high-level interface to the VSP Configuration Manager REST API.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/netapp/gadctl/config"
	. "github.com/netapp/gadctl/logging"
	"github.com/netapp/gadctl/utils"
	"github.com/netapp/gadctl/utils/errors"
)

const (
	sessionsPath = "/sessions"
	jobsPath     = "/jobs"

	sessionAuthScheme = "Session "
)

// ClientConfig holds configuration data for the API client object.
type ClientConfig struct {
	ConnectionInfo

	// WaitForJobs makes mutating calls block until the controller job reaches a terminal state.
	WaitForJobs     bool
	JobPollInterval time.Duration
	JobWaitTimeout  time.Duration

	DebugTraceFlags map[string]bool
}

// NewClientConfig returns a config with the package defaults for one controller.
func NewClientConfig(conn ConnectionInfo, debugTraceFlags map[string]bool) ClientConfig {
	return ClientConfig{
		ConnectionInfo:  conn,
		WaitForJobs:     true,
		JobPollInterval: config.JobPollInterval,
		JobWaitTimeout:  config.JobWaitTimeout,
		DebugTraceFlags: debugTraceFlags,
	}
}

type session struct {
	ID    int    `json:"sessionId"`
	Token string `json:"token"`
}

// Client is the object to use for interacting with one storage controller. The remote client,
// when set, is the controller on the other side of any GAD pair this client manages.
type Client struct {
	config     ClientConfig
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter

	m       sync.Mutex
	session *session
	info    *StorageInfo
	remote  *Client
}

var (
	_ VolumeAPI           = (*Client)(nil)
	_ HostConnectivityAPI = (*Client)(nil)
	_ ResourceGroupAPI    = (*Client)(nil)
	_ CopyGroupAPI        = (*Client)(nil)
	_ StorageSystemAPI    = (*Client)(nil)
)

// NewClient is a factory method for creating a new instance.
func NewClient(clientConfig ClientConfig) *Client {
	scheme, port := "https", config.StorageAPIDefaultPort
	if clientConfig.UseHTTP {
		scheme, port = "http", 80
	}
	if clientConfig.Port != 0 {
		port = clientConfig.Port
	}
	if clientConfig.JobPollInterval <= 0 {
		clientConfig.JobPollInterval = config.JobPollInterval
	}
	if clientConfig.JobWaitTimeout <= 0 {
		clientConfig.JobWaitTimeout = config.JobWaitTimeout
	}

	baseURL := url.URL{
		Scheme: scheme,
		Host:   clientConfig.Address + ":" + strconv.Itoa(port),
		Path:   config.StorageAPIBasePath,
	}

	return &Client{
		config:  clientConfig,
		baseURL: baseURL.String(),
		httpClient: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !clientConfig.VerifyTLS, // Allow certificate validation override
				},
			},
			Timeout: config.StorageAPITimeoutSeconds * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(config.RESTRequestsPerSecond), config.RESTBurst),
	}
}

// SetRemote sets the controller this client pairs with.
func (c *Client) SetRemote(remote *Client) {
	c.m.Lock()
	defer c.m.Unlock()
	c.remote = remote
}

func (c *Client) Remote() *Client {
	c.m.Lock()
	defer c.m.Unlock()
	return c.remote
}

// Name identifies the controller in logs and metrics.
func (c *Client) Name() string {
	if c.config.Serial != "" {
		return c.config.Serial
	}
	return c.config.Address
}

// ///////////////////////////////////////////////////////////////////////////
//
// Sessions
//
// ///////////////////////////////////////////////////////////////////////////

// Login opens a session on the controller. Calls made without a session log in on demand.
func (c *Client) Login(ctx context.Context) error {
	_, err := c.sessionToken(ctx)
	return err
}

// Logout discards the current session, if any.
func (c *Client) Logout(ctx context.Context) error {
	c.m.Lock()
	s := c.session
	c.session = nil
	c.m.Unlock()

	if s == nil {
		return nil
	}

	req, err := c.newRequest(ctx, http.MethodDelete, c.baseURL+sessionsPath+"/"+strconv.Itoa(s.ID), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", sessionAuthScheme+s.Token)

	res, data, err := c.invokeAPI(ctx, req, nil)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNoContent {
		return errorFromResponse(res, data)
	}
	return nil
}

func (c *Client) sessionToken(ctx context.Context) (string, error) {
	c.m.Lock()
	defer c.m.Unlock()

	if c.session != nil {
		return c.session.Token, nil
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+sessionsPath, []byte("{}"))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.config.Username, c.config.Password)

	res, data, err := c.invokeAPI(ctx, req, []byte("{}"))
	if err != nil {
		return "", errors.WrapWithConnectionError(err, "could not log in to storage controller %s", c.Name())
	}
	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return "", errorFromResponse(res, data)
	}

	var s session
	if err = json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("could not parse session data: %s; %v", string(data), err)
	}
	if s.Token == "" {
		return "", errors.ConnectionError("storage controller %s returned an empty session token", c.Name())
	}

	Logc(ctx).WithFields(LogFields{"controller": c.Name(), "sessionId": s.ID}).Debug("Logged in to storage controller.")
	c.session = &s
	return s.Token, nil
}

func (c *Client) dropSession() {
	c.m.Lock()
	defer c.m.Unlock()
	c.session = nil
}

// ///////////////////////////////////////////////////////////////////////////
//
// Transport
//
// ///////////////////////////////////////////////////////////////////////////

// newRequest accepts necessary fields to construct a new http request.
func (c *Client) newRequest(ctx context.Context, method, url string, data []byte) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var body io.Reader
	if data != nil {
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: [%s, %s]; %v", method, url, err)
	}

	req.Header.Set("Accept", "application/json")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// invokeAPI makes the request and reads the response, honoring the client's rate limit.
func (c *Client) invokeAPI(ctx context.Context, req *http.Request, requestBody []byte) (*http.Response, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, err
	}

	if c.config.DebugTraceFlags["api"] {
		redact := req.URL.Path == path.Join(config.StorageAPIBasePath, sessionsPath) &&
			!c.config.DebugTraceFlags["sensitive"]
		utils.LogHTTPRequest(req, prettyJSON(requestBody), redact)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	apiOpsSecondsTotal.WithLabelValues(c.Name(), req.Method).Observe(time.Since(start).Seconds())
	if err != nil {
		apiOpsTotal.WithLabelValues(c.Name(), req.Method, "error").Inc()
		return nil, nil, fmt.Errorf("failed to invoke storage REST API: [%s]; %v", req.URL.String(), err)
	}
	defer func() { _ = res.Body.Close() }()
	apiOpsTotal.WithLabelValues(c.Name(), req.Method, strconv.Itoa(res.StatusCode)).Inc()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return res, nil, fmt.Errorf("failed to read response body; %v", err)
	}

	if c.config.DebugTraceFlags["api"] {
		utils.LogHTTPResponse(ctx, res, prettyJSON(data), false)
	}

	return res, data, nil
}

func prettyJSON(data []byte) []byte {
	if data == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return data
	}
	return buf.Bytes()
}

// call sends an authenticated request. A 401 drops the session and the request is sent once more
// after logging in again. When remoteAuth is set, the remote controller's session travels in the
// Remote-Authorization header.
func (c *Client) call(
	ctx context.Context, method, resourcePath string, query url.Values, body any, remoteAuth bool,
) (*http.Response, []byte, error) {
	var requestBody []byte
	if body != nil {
		var err error
		if requestBody, err = json.Marshal(body); err != nil {
			return nil, nil, fmt.Errorf("could not marshal request body; %v", err)
		}
	}

	requestURL := c.baseURL + resourcePath
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var remote *Client
	if remoteAuth {
		if remote = c.Remote(); remote == nil {
			return nil, nil, errors.InvalidInputError("no remote storage controller is configured for %s", c.Name())
		}
	}

	for attempt := 0; ; attempt++ {
		token, err := c.sessionToken(ctx)
		if err != nil {
			return nil, nil, err
		}

		req, err := c.newRequest(ctx, method, requestURL, requestBody)
		if err != nil {
			return nil, nil, err
		}
		req.Header.Set("Authorization", sessionAuthScheme+token)

		if remote != nil {
			remoteToken, err := remote.sessionToken(ctx)
			if err != nil {
				return nil, nil, err
			}
			req.Header.Set("Remote-Authorization", sessionAuthScheme+remoteToken)
		}

		res, data, err := c.invokeAPI(ctx, req, requestBody)
		if err != nil {
			return res, data, err
		}

		if res.StatusCode == http.StatusUnauthorized && attempt == 0 {
			Logc(ctx).WithField("controller", c.Name()).Debug("Session rejected; logging in again.")
			c.dropSession()
			if remote != nil {
				remote.dropSession()
			}
			continue
		}

		return res, data, nil
	}
}

// get reads one resource or collection into result.
func (c *Client) get(ctx context.Context, resourcePath string, query url.Values, result any, remoteAuth bool) error {
	res, data, err := c.call(ctx, http.MethodGet, resourcePath, query, nil, remoteAuth)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK {
		return errorFromResponse(res, data)
	}
	if err = json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("could not parse %s data: %s; %v", resourcePath, string(data), err)
	}
	return nil
}

// modify issues a mutating request. The controller answers with a job; when the client is set to
// wait for jobs, the job is polled to a terminal state and a failed job is returned as an error.
func (c *Client) modify(ctx context.Context, method, resourcePath string, body any, remoteAuth bool) (*Job, error) {
	res, data, err := c.call(ctx, method, resourcePath, nil, body, remoteAuth)
	if err != nil {
		return nil, err
	}

	switch res.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
	default:
		return nil, errorFromResponse(res, data)
	}

	job := &Job{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err = json.Unmarshal(data, job); err != nil {
			return nil, fmt.Errorf("could not parse job data: %s; %v", string(data), err)
		}
	}

	if res.StatusCode != http.StatusAccepted || job.JobID == 0 || !c.config.WaitForJobs {
		return job, nil
	}

	return c.waitForJob(ctx, job)
}

func (c *Client) getJob(ctx context.Context, jobID int) (*Job, error) {
	job := &Job{}
	if err := c.get(ctx, jobsPath+"/"+strconv.Itoa(jobID), nil, job, false); err != nil {
		return nil, err
	}
	return job, nil
}

func (c *Client) waitForJob(ctx context.Context, job *Job) (*Job, error) {
	fields := LogFields{"controller": c.Name(), "jobId": job.JobID}

	current := job
	var pollErr error
	checkJob := func() error {
		if current.Status == JobStatusCompleted {
			return nil
		}
		j, err := c.getJob(ctx, job.JobID)
		if err != nil {
			pollErr = err
			return backoff.Permanent(err)
		}
		current = j
		if current.Status != JobStatusCompleted {
			return fmt.Errorf("job %d is %s", current.JobID, current.Status)
		}
		return nil
	}
	jobNotify := func(err error, duration time.Duration) {
		Logc(ctx).WithFields(fields).WithField("increment", duration).Debug("Job not complete; waiting.")
	}

	jobBackoff := backoff.NewExponentialBackOff()
	jobBackoff.InitialInterval = c.config.JobPollInterval
	jobBackoff.Multiplier = 1
	jobBackoff.RandomizationFactor = 0
	jobBackoff.MaxInterval = c.config.JobPollInterval
	jobBackoff.MaxElapsedTime = c.config.JobWaitTimeout

	if err := backoff.RetryNotify(checkJob, backoff.WithContext(jobBackoff, ctx), jobNotify); err != nil {
		if pollErr != nil {
			return current, pollErr
		}
		if ctx.Err() != nil {
			return current, ctx.Err()
		}
		return current, errors.MaxWaitExceededError("job %d did not complete within %v", job.JobID,
			c.config.JobWaitTimeout)
	}

	jobsTotal.WithLabelValues(c.Name(), current.State).Inc()

	if current.State == JobStateFailed {
		Logc(ctx).WithFields(fields).Debug("Job failed.")
		apiErr := Error{Message: fmt.Sprintf("job %d failed", current.JobID)}
		if current.Error != nil {
			apiErr.MessageID = current.Error.MessageID
			apiErr.Message = current.Error.Message
			apiErr.Solution = current.Error.Solution
			apiErr.StatusCode = jobErrorStatus(current.Error)
		}
		return current, apiErr
	}

	Logc(ctx).WithFields(fields).Debug("Job succeeded.")
	return current, nil
}

// jobErrorStatus maps job failures the caller needs to branch on to an equivalent HTTP status.
func jobErrorStatus(jobErr *APIError) int {
	message := strings.ToLower(jobErr.Message)
	switch {
	case strings.Contains(message, "already"):
		return http.StatusConflict
	case strings.Contains(message, "does not exist"), strings.Contains(message, "not found"):
		return http.StatusNotFound
	default:
		return 0
	}
}

// errorFromResponse converts error information from an API response into an Error.
func errorFromResponse(res *http.Response, data []byte) Error {
	apiErr := Error{StatusCode: res.StatusCode}

	var body APIError
	if err := json.Unmarshal(data, &body); err != nil || body.Message == "" {
		apiErr.Message = res.Status
		return apiErr
	}

	apiErr.MessageID = body.MessageID
	apiErr.Message = body.Message
	apiErr.Solution = body.Solution
	return apiErr
}

// affectedResource returns the last path segment of the first affected resource of a job, which is
// the id of the object the job created.
func affectedResource(job *Job) (string, error) {
	if job == nil || len(job.AffectedResources) == 0 {
		return "", fmt.Errorf("job returned no affected resources")
	}
	resource := job.AffectedResources[0]
	if i := strings.LastIndex(resource, "/"); i >= 0 {
		resource = resource[i+1:]
	}
	if unescaped, err := url.PathUnescape(resource); err == nil {
		resource = unescaped
	}
	return resource, nil
}

// ///////////////////////////////////////////////////////////////////////////
//
// Storage system
//
// ///////////////////////////////////////////////////////////////////////////

// StorageInfo returns the identity of the controller. The identity does not change for the life
// of the client, so it is read once.
func (c *Client) StorageInfo(ctx context.Context) (*StorageInfo, error) {
	c.m.Lock()
	info := c.info
	c.m.Unlock()
	if info != nil {
		return info, nil
	}

	info = &StorageInfo{}
	if err := c.get(ctx, "/storages/instance", nil, info, false); err != nil {
		return nil, err
	}

	if c.config.Serial != "" && strconv.Itoa(info.SerialNumber) != c.config.Serial {
		return nil, errors.InvalidInputError("storage controller %s reports serial %d, expected %s",
			c.config.Address, info.SerialNumber, c.config.Serial)
	}

	c.m.Lock()
	c.info = info
	c.m.Unlock()
	return info, nil
}

func (c *Client) remoteStorageDeviceID(ctx context.Context) (string, error) {
	remote := c.Remote()
	if remote == nil {
		return "", errors.InvalidInputError("no remote storage controller is configured for %s", c.Name())
	}
	info, err := remote.StorageInfo(ctx)
	if err != nil {
		return "", err
	}
	return info.StorageDeviceID, nil
}

type dataList[T any] struct {
	Data []T `json:"data"`
}

// objectPath escapes an object id for use as a path segment. Composite ids keep their commas,
// which the API expects verbatim.
func objectPath(id string) string {
	return strings.ReplaceAll(url.PathEscape(id), "%2C", ",")
}
